package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/money_ledger/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ScopeHeader selects whose books a request works on. It defaults to the token's scope claim,
// then to the caller's own user ID.
const ScopeHeader = "X-Scope-ID"

// LedgerClaims are the claims read from an externally issued access token.
type LedgerClaims struct {
	ScopeID string `json:"scope_id,omitempty"`
	jwt.RegisteredClaims
}

// AuthMiddleware creates a Gin middleware handler that validates HMAC signed JWTs and
// stores the resulting domain.Session in the request context. An empty issuer skips the
// issuer check.
func AuthMiddleware(jwtSecret, issuer string) gin.HandlerFunc {
	parserOpts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"})}
	if issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(issuer))
	}
	parser := jwt.NewParser(parserOpts...)

	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims := &LedgerClaims{}
		token, err := parser.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(jwtSecret), nil
		})
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}
		if !token.Valid || claims.Subject == "" {
			logger.Error("User ID (subject) missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		session := domain.Session{UserID: claims.Subject, ScopeID: claims.Subject}
		if claims.ScopeID != "" {
			session.ScopeID = claims.ScopeID
		}
		if scope := strings.TrimSpace(c.GetHeader(ScopeHeader)); scope != "" {
			session.ScopeID = scope
		}

		enrichedLogger := logger.With(slog.String("user_id", session.UserID), slog.String("scope_id", session.ScopeID))
		ctx := WithSession(WithLogger(c.Request.Context(), enrichedLogger), session)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// IssueToken signs an HS256 access token that AuthMiddleware accepts. The API never issues
// tokens itself; this is used by ledgerctl to mint tokens for local development.
func IssueToken(secret, issuer, userID, scopeID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := LedgerClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	if scopeID != userID {
		claims.ScopeID = scopeID
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
