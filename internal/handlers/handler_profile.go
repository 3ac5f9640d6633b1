package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/money_ledger/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

type profileHandler struct {
	profileService portssvc.ProfileSvc
}

func registerProfileRoutes(rg *gin.RouterGroup, ps portssvc.ProfileSvc) {
	h := &profileHandler{profileService: ps}
	rg.GET("/profile", h.getProfile)
}

// getProfile godoc
// @Summary Get the caller's profile
// @Description Returns the profile of the authenticated user, whatever books the request is scoped to
// @Tags profile
// @Produce  json
// @Success 200 {object} domain.Profile
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to load profile"
// @Security BearerAuth
// @Router /profile [get]
func (h *profileHandler) getProfile(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), session)
	if err != nil {
		respondError(c, err, "Failed to load profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}
