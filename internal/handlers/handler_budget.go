package handlers

import (
	"net/http"
	"time"

	"github.com/SscSPs/money_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/money_ledger/internal/core/ports/services"
	"github.com/SscSPs/money_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

func registerBudgetRoutes(rg *gin.RouterGroup, bs portssvc.BudgetSvcFacade) {
	h := &budgetHandler{budgetService: bs}

	budgets := rg.Group("/budgets")
	{
		budgets.POST("", h.createBudget)
		budgets.GET("", h.listBudgets)
	}
}

// createBudget godoc
// @Summary Create a budget
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   budget body dto.CreateBudgetRequest true "Budget"
// @Success 201 {object} domain.Budget
// @Failure 400 {object} dto.ErrorResponse "Invalid budget"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Failed to create budget"
// @Security BearerAuth
// @Router /budgets [post]
func (h *budgetHandler) createBudget(c *gin.Context) {
	var req dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	session, ok := requireSession(c)
	if !ok {
		return
	}

	budget, err := h.budgetService.CreateBudget(c.Request.Context(), session, req)
	if err != nil {
		respondError(c, err, "Failed to create budget")
		return
	}
	c.JSON(http.StatusCreated, budget)
}

// listBudgets godoc
// @Summary List budgets with progress
// @Description Returns each budget with the amount spent from matching expense transactions
// @Tags budgets
// @Produce  json
// @Param   activeOn query string false "Only budgets whose period contains this date"
// @Success 200 {object} dto.ListBudgetsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid date"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Failed to list budgets"
// @Security BearerAuth
// @Router /budgets [get]
func (h *budgetHandler) listBudgets(c *gin.Context) {
	var params dto.ListBudgetsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var activeOn *time.Time
	if params.ActiveOn != "" {
		t, err := dto.ParseDate(params.ActiveOn, false)
		if err != nil {
			badRequest(c, err)
			return
		}
		activeOn = &t
	}

	progress, err := h.budgetService.ListBudgetProgress(c.Request.Context(), session, activeOn)
	if err != nil {
		respondError(c, err, "Failed to list budgets")
		return
	}
	if progress == nil {
		progress = []domain.BudgetProgress{}
	}
	c.JSON(http.StatusOK, dto.ListBudgetsResponse{Budgets: progress})
}
