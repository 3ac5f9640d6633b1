package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/money_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/money_ledger/internal/core/ports/services"
	"github.com/SscSPs/money_ledger/internal/dto"
	"github.com/SscSPs/money_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func registerTransactionRoutes(rg *gin.RouterGroup, ts portssvc.TransactionSvcFacade) {
	h := &transactionHandler{transactionService: ts}

	txns := rg.Group("/transactions")
	{
		txns.POST("", h.createTransaction)
		txns.GET("", h.listTransactions)
	}
}

// createTransaction godoc
// @Summary Record a budgeting transaction
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction"
// @Success 201 {object} domain.Transaction
// @Failure 400 {object} dto.ErrorResponse "Invalid transaction"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Failed to create transaction"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	session, ok := requireSession(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), session, req)
	if err != nil {
		respondError(c, err, "Failed to create transaction")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Transaction created",
		slog.String("transaction_id", txn.TransactionID), slog.String("category", txn.Category))
	c.JSON(http.StatusCreated, txn)
}

// listTransactions godoc
// @Summary List budgeting transactions
// @Tags transactions
// @Produce  json
// @Param   from query string false "Start date (YYYY-MM-DD or RFC 3339)"
// @Param   to query string false "End date, inclusive"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid date range"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Failed to list transactions"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var period *domain.DateRange
	if params.From != "" || params.To != "" {
		r, err := dto.ParseDateRange(params.From, params.To)
		if err != nil {
			badRequest(c, err)
			return
		}
		period = &r
	}

	txns, err := h.transactionService.ListTransactions(c.Request.Context(), session, period)
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	c.JSON(http.StatusOK, dto.ListTransactionsResponse{Transactions: txns})
}
