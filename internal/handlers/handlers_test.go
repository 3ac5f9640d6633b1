package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/money_ledger/internal/apperrors"
	"github.com/SscSPs/money_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/money_ledger/internal/core/ports/services"
	"github.com/SscSPs/money_ledger/internal/dto"
	"github.com/SscSPs/money_ledger/internal/handlers"
	"github.com/SscSPs/money_ledger/internal/middleware"
	"github.com/SscSPs/money_ledger/internal/platform/config"
	"github.com/SscSPs/money_ledger/internal/utils/accounting"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testUserID = "user-1"

type HandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	jwtSecret   string
	accounts    *MockAccountService
	journals    *MockJournalService
	txns        *MockTransactionService
	statements  *MockStatementService
	budgets     *MockBudgetService
	profiles    *MockProfileService
	ownSession  domain.Session
	testAccount *domain.Account
}

// generateTestToken creates a signed JWT for the given user.
func (suite *HandlerTestSuite) generateTestToken(userID string) string {
	claims := middleware.LedgerClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "money-ledger-test",
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.accounts = new(MockAccountService)
	suite.journals = new(MockJournalService)
	suite.txns = new(MockTransactionService)
	suite.statements = new(MockStatementService)
	suite.budgets = new(MockBudgetService)
	suite.profiles = new(MockProfileService)
	suite.ownSession = domain.Session{UserID: testUserID, ScopeID: testUserID}

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		JWTIssuer:    "money-ledger-test",
		IsProduction: true,
	}
	container := &portssvc.ServiceContainer{
		Account:     suite.accounts,
		Journal:     suite.journals,
		Transaction: suite.txns,
		Statement:   suite.statements,
		Budget:      suite.budgets,
		Profile:     suite.profiles,
	}
	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, container, nil)

	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	suite.testAccount = &domain.Account{
		AccountID:    "acc-cash",
		ScopeID:      testUserID,
		Code:         "1000",
		Name:         "Cash",
		AccountType:  domain.Checking,
		CurrencyCode: "USD",
		IsActive:     true,
		Balance:      decimal.Zero,
		AuditFields:  domain.AuditFields{CreatedAt: now, CreatedBy: testUserID, LastUpdatedAt: now, LastUpdatedBy: testUserID},
	}
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.accounts.AssertExpectations(suite.T())
	suite.journals.AssertExpectations(suite.T())
	suite.txns.AssertExpectations(suite.T())
	suite.statements.AssertExpectations(suite.T())
	suite.budgets.AssertExpectations(suite.T())
	suite.profiles.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) do(method, url string, body any, headers ...string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(testUserID))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) errorBody(w *httptest.ResponseRecorder) dto.ErrorResponse {
	var res dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res), w.Body.String())
	return res
}

// --- Health and auth ---

func (suite *HandlerTestSuite) TestHealth() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestMissingToken() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil))
	suite.Equal(http.StatusUnauthorized, w.Code)
}

// --- Accounts ---

func (suite *HandlerTestSuite) TestCreateAccount_Success() {
	req := dto.CreateAccountRequest{Code: "1000", Name: "Cash", AccountType: domain.Checking}
	suite.accounts.On("CreateAccount", mock.Anything, suite.ownSession, req).Return(suite.testAccount, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts", req)

	suite.Equal(http.StatusCreated, w.Code)
	var res dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("acc-cash", res.AccountID)
	suite.Equal(domain.Asset, res.Class)
}

func (suite *HandlerTestSuite) TestCreateAccount_InvalidBody() {
	w := suite.do(http.MethodPost, "/api/v1/accounts", `{"code":"1000","accountType":"ASSET"}`)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.True(strings.HasPrefix(suite.errorBody(w).Error, "Invalid request format"))
}

func (suite *HandlerTestSuite) TestCreateAccount_UnknownType() {
	w := suite.do(http.MethodPost, "/api/v1/accounts", `{"code":"1000","name":"Cash","accountType":"CRYPTO"}`)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCreateAccount_Duplicate() {
	suite.accounts.On("CreateAccount", mock.Anything, suite.ownSession, mock.Anything).
		Return(nil, fmt.Errorf("failed to save account: %w",
			apperrors.NewAppError(409, "account with code 1000 already exists", apperrors.ErrDuplicate))).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts", dto.CreateAccountRequest{Code: "1000", Name: "Cash", AccountType: domain.Asset})
	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("account with code 1000 already exists", suite.errorBody(w).Error)
}

func (suite *HandlerTestSuite) TestGetAccount_NotFound() {
	suite.accounts.On("GetAccount", mock.Anything, suite.ownSession, "missing").
		Return(nil, fmt.Errorf("failed to find account: %w", apperrors.NewNotFoundError("account missing not found"))).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/missing", nil)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("account missing not found", suite.errorBody(w).Error)
}

func (suite *HandlerTestSuite) TestNotFound_BareSentinelIsGeneric() {
	suite.journals.On("GetJournalEntry", mock.Anything, suite.ownSession, "j-9").
		Return(nil, fmt.Errorf("failed to find journal entry: %w", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodGet, "/api/v1/journals/j-9", nil)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Resource not found", suite.errorBody(w).Error)
}

func (suite *HandlerTestSuite) TestListAccounts_ForwardsScopeHeader() {
	delegated := domain.Session{UserID: testUserID, ScopeID: "client-7"}
	suite.accounts.On("ListAccounts", mock.Anything, delegated).Return(nil, apperrors.ErrForbidden).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts", nil, middleware.ScopeHeader, "client-7")
	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal("Forbidden", suite.errorBody(w).Error)
}

func (suite *HandlerTestSuite) TestGetChartOfAccounts() {
	expense := domain.Account{AccountID: "acc-rent", ScopeID: testUserID, Code: "5000", Name: "Rent", AccountType: domain.Expense}
	chart := accounting.NewChartOfAccounts(testUserID, []domain.Account{expense, *suite.testAccount})
	suite.accounts.On("GetChartOfAccounts", mock.Anything, suite.ownSession).Return(chart, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/chart", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.ChartOfAccountsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Require().Len(res.Accounts, 2)
	suite.Equal("1000", res.Accounts[0].Code)
	suite.Equal(domain.Asset, res.Accounts[0].Class)
	suite.Equal(domain.Expense, res.Accounts[1].Class)
}

func (suite *HandlerTestSuite) TestUnexpectedErrorIsHidden() {
	suite.accounts.On("ListAccounts", mock.Anything, suite.ownSession).Return(nil, errors.New("pq: connection reset")).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts", nil)
	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to list accounts", suite.errorBody(w).Error)
}

// --- Journals ---

func (suite *HandlerTestSuite) TestCreateJournalEntry_RuleViolation() {
	violation := &accounting.ValidationError{Reason: accounting.ReasonUnbalanced, Message: "Debits (100.00) do not equal credits (90.00)"}
	suite.journals.On("CreateJournalEntry", mock.Anything, suite.ownSession, mock.AnythingOfType("dto.CreateJournalEntryRequest")).
		Return(nil, violation).Once()

	body := `{"description":"Rent","lines":[{"account":"5000","debitAmount":"100"},{"account":"1000","creditAmount":"90"}]}`
	w := suite.do(http.MethodPost, "/api/v1/journals", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	res := suite.errorBody(w)
	suite.Equal(string(accounting.ReasonUnbalanced), res.Reason)
	suite.Equal(violation.Message, res.Error)
}

func (suite *HandlerTestSuite) TestCreateJournalEntry_Posted() {
	entry := &domain.JournalEntry{
		JournalID:   "j-1",
		ScopeID:     testUserID,
		Description: "Rent",
		Status:      domain.Posted,
		Amount:      decimal.NewFromInt(100),
	}
	suite.journals.On("CreateJournalEntry", mock.Anything, suite.ownSession, mock.MatchedBy(func(r dto.CreateJournalEntryRequest) bool {
		return r.Description == "Rent" && len(r.Lines) == 2 && r.Lines[0].DebitAmount.Equal(decimal.NewFromInt(100))
	})).Return(entry, nil).Once()

	body := `{"description":"Rent","lines":[{"account":"5000","debitAmount":"100"},{"account":"1000","creditAmount":"100"}]}`
	w := suite.do(http.MethodPost, "/api/v1/journals", body)

	suite.Equal(http.StatusCreated, w.Code)
	var res dto.JournalEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(domain.Posted, res.Status)
}

func (suite *HandlerTestSuite) TestCreateJournalEntry_InvalidStatus() {
	w := suite.do(http.MethodPost, "/api/v1/journals", `{"description":"x","status":"VOID"}`)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListJournalEntries() {
	next := "tok"
	suite.journals.On("ListJournalEntries", mock.Anything, suite.ownSession, dto.ListJournalEntriesParams{Limit: 5, Status: "DRAFT"}).
		Return(&dto.ListJournalEntriesResponse{Entries: []dto.JournalEntryResponse{{JournalID: "j-2"}}, NextToken: &next}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/journals?limit=5&status=DRAFT", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.ListJournalEntriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Len(res.Entries, 1)
	suite.Require().NotNil(res.NextToken)
	suite.Equal("tok", *res.NextToken)
}

func (suite *HandlerTestSuite) TestListJournalEntries_BadQuery() {
	w := suite.do(http.MethodGet, "/api/v1/journals?status=OPEN", nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/journals?limit=500", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestVoidJournalEntry_Conflict() {
	suite.journals.On("VoidJournalEntry", mock.Anything, suite.ownSession, "j-1").
		Return(nil, fmt.Errorf("failed to update journal entry status: %w",
			apperrors.NewConflictError("journal entry already reversed by j-2"))).Once()

	w := suite.do(http.MethodPost, "/api/v1/journals/j-1/void", nil)
	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("journal entry already reversed by j-2", suite.errorBody(w).Error)
}

func (suite *HandlerTestSuite) TestPostJournalEntry() {
	suite.journals.On("PostJournalEntry", mock.Anything, suite.ownSession, "j-1").
		Return(&domain.JournalEntry{JournalID: "j-1", Status: domain.Posted}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/journals/j-1/post", nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestReverseJournalEntry() {
	original := "j-1"
	suite.journals.On("ReverseJournalEntry", mock.Anything, suite.ownSession, "j-1").
		Return(&domain.JournalEntry{JournalID: "j-9", Status: domain.Posted, ReversalOfID: &original}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/journals/j-1/reverse", nil)

	suite.Equal(http.StatusCreated, w.Code)
	var res dto.JournalEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Require().NotNil(res.ReversalOfID)
	suite.Equal("j-1", *res.ReversalOfID)
}

func (suite *HandlerTestSuite) TestUpdateDraftJournalEntry() {
	suite.journals.On("UpdateDraftJournalEntry", mock.Anything, suite.ownSession, "j-1", mock.MatchedBy(func(r dto.UpdateDraftJournalEntryRequest) bool {
		return r.Description == "Rent (edited)"
	})).Return(&domain.JournalEntry{JournalID: "j-1", Status: domain.Draft, Description: "Rent (edited)"}, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/journals/j-1", `{"description":"Rent (edited)","lines":[]}`)
	suite.Equal(http.StatusOK, w.Code)
}

// --- Transactions ---

func (suite *HandlerTestSuite) TestListTransactions_DateRange() {
	suite.txns.On("ListTransactions", mock.Anything, suite.ownSession, mock.MatchedBy(func(p *domain.DateRange) bool {
		return p != nil &&
			p.From.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) &&
			p.Contains(time.Date(2025, 1, 31, 23, 0, 0, 0, time.UTC))
	})).Return(nil, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions?from=2025-01-01&to=2025-01-31", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"transactions":[]}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestListTransactions_NoRange() {
	suite.txns.On("ListTransactions", mock.Anything, suite.ownSession, (*domain.DateRange)(nil)).
		Return([]domain.Transaction{{TransactionID: "t-1"}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions", nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestListTransactions_InvalidDate() {
	w := suite.do(http.MethodGet, "/api/v1/transactions?from=last-week", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCreateTransaction_NegativeIncome() {
	suite.txns.On("CreateTransaction", mock.Anything, suite.ownSession, mock.Anything).
		Return(nil, fmt.Errorf("%w: income amount cannot be negative", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions", `{"category":"Salary","type":"INCOME","amount":"-5"}`)
	suite.Equal(http.StatusBadRequest, w.Code)
}

// --- Statements ---

func (suite *HandlerTestSuite) TestGetStatement() {
	stmt := &domain.FinancialStatement{Type: domain.ProfitLossStatement, ScopeID: testUserID, ProfitAndLoss: &domain.ProfitAndLoss{}}
	suite.statements.On("GenerateFinancialStatement", mock.Anything, suite.ownSession, mock.MatchedBy(func(p domain.StatementParams) bool {
		return p.Type == domain.ProfitLossStatement &&
			p.Source == domain.SourceJournal &&
			p.PeriodStart.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) &&
			p.PeriodEnd.Equal(time.Date(2025, 1, 31, 23, 59, 59, 999999999, time.UTC))
	})).Return(stmt, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/statements/profit_loss?from=2025-01-01&to=2025-01-31&source=journal", nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestGetStatement_UnknownType() {
	suite.statements.On("GenerateFinancialStatement", mock.Anything, suite.ownSession, mock.Anything).
		Return(nil, fmt.Errorf("%w: unknown statement type \"cash_flow\"", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodGet, "/api/v1/statements/cash_flow", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetStatement_BadSource() {
	w := suite.do(http.MethodGet, "/api/v1/statements/profit_loss?source=ledger", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestExportStatement_CSV() {
	rows := []domain.ExportRow{
		{Section: domain.SectionIncome, Account: "Salary", Amount: decimal.NewFromInt(5000)},
		{Section: domain.SectionSummary, Account: "Net Profit", Amount: decimal.NewFromInt(5000)},
	}
	suite.statements.On("ExportFinancialStatement", mock.Anything, suite.ownSession, mock.Anything).Return(rows, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/statements/profit_loss/export", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Content-Type"), "text/csv")
	suite.Contains(w.Header().Get("Content-Disposition"), "profit_loss.csv")
	suite.Equal("Section,Account,Amount\nIncome,Salary,5000.00\nSummary,Net Profit,5000.00\n", w.Body.String())
}

func (suite *HandlerTestSuite) TestExportStatement_JSON() {
	rows := []domain.ExportRow{{Section: domain.SectionEquity, Account: "Total Equity", Amount: decimal.NewFromInt(10)}}
	suite.statements.On("ExportFinancialStatement", mock.Anything, suite.ownSession, mock.Anything).Return(rows, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/statements/balance_sheet/export?format=json", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[{"Section":"Equity","Account":"Total Equity","Amount":"10"}]`, w.Body.String())
}

// --- Budgets and profile ---

func (suite *HandlerTestSuite) TestCreateBudget_NegativeAllocation() {
	body := `{"category":"Food","allocatedAmount":"-1","periodStart":"2025-01-01T00:00:00Z","periodEnd":"2025-01-31T00:00:00Z"}`
	w := suite.do(http.MethodPost, "/api/v1/budgets", body)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCreateBudget() {
	suite.budgets.On("CreateBudget", mock.Anything, suite.ownSession, mock.MatchedBy(func(r dto.CreateBudgetRequest) bool {
		return r.Category == "Food" && r.AllocatedAmount.Equal(decimal.NewFromInt(300))
	})).Return(&domain.Budget{BudgetID: "b-1", Category: "Food"}, nil).Once()

	body := `{"category":"Food","allocatedAmount":"300","periodStart":"2025-01-01T00:00:00Z","periodEnd":"2025-01-31T00:00:00Z"}`
	w := suite.do(http.MethodPost, "/api/v1/budgets", body)
	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *HandlerTestSuite) TestListBudgets_ActiveOn() {
	day := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	suite.budgets.On("ListBudgetProgress", mock.Anything, suite.ownSession, mock.MatchedBy(func(t *time.Time) bool {
		return t != nil && t.Equal(day)
	})).Return([]domain.BudgetProgress{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/budgets?activeOn=2025-01-15", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"budgets":[]}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestGetProfile() {
	name := "Ada"
	suite.profiles.On("GetProfile", mock.Anything, suite.ownSession).Return(&domain.Profile{UserID: testUserID, DisplayName: &name}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/profile", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"userID":"user-1","displayName":"Ada","email":null,"avatarURL":null}`, w.Body.String())
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
