package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/SscSPs/money_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/money_ledger/internal/core/ports/services"
	"github.com/SscSPs/money_ledger/internal/dto"
	"github.com/SscSPs/money_ledger/internal/utils/accounting"
	"github.com/gin-gonic/gin"
)

type reportingHandler struct {
	statementService portssvc.StatementSvcFacade
}

func registerReportingRoutes(rg *gin.RouterGroup, ss portssvc.StatementSvcFacade) {
	h := &reportingHandler{statementService: ss}

	statements := rg.Group("/statements")
	{
		statements.GET("/:type", h.getStatement)
		statements.GET("/:type/export", h.exportStatement)
	}
}

// statementParams reads the path and query of a statement request.
func statementParams(c *gin.Context) (domain.StatementParams, string, error) {
	var q dto.StatementQueryParams
	if err := c.ShouldBindQuery(&q); err != nil {
		return domain.StatementParams{}, "", err
	}
	period, err := dto.ParseDateRange(q.From, q.To)
	if err != nil {
		return domain.StatementParams{}, "", err
	}
	return domain.StatementParams{
		Type:        domain.StatementType(c.Param("type")),
		PeriodStart: period.From,
		PeriodEnd:   period.To,
		Source:      domain.StatementSource(q.Source),
	}, q.Format, nil
}

// getStatement godoc
// @Summary Generate a financial statement
// @Description Builds a profit and loss statement or balance sheet on demand
// @Tags statements
// @Produce  json
// @Param   type path string true "Statement type" Enums(profit_loss, balance_sheet)
// @Param   from query string false "Period start (YYYY-MM-DD or RFC 3339)"
// @Param   to query string false "Period end, inclusive"
// @Param   source query string false "Profit and loss source" Enums(transactions, journal)
// @Success 200 {object} domain.FinancialStatement
// @Failure 400 {object} dto.ErrorResponse "Invalid statement request"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate statement"
// @Security BearerAuth
// @Router /statements/{type} [get]
func (h *reportingHandler) getStatement(c *gin.Context) {
	params, _, err := statementParams(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	session, ok := requireSession(c)
	if !ok {
		return
	}

	stmt, err := h.statementService.GenerateFinancialStatement(c.Request.Context(), session, params)
	if err != nil {
		respondError(c, err, "Failed to generate statement")
		return
	}
	c.JSON(http.StatusOK, stmt)
}

// exportStatement godoc
// @Summary Export a financial statement
// @Description Flattens a statement into Section, Account and Amount rows as CSV (default) or JSON
// @Tags statements
// @Produce  text/csv
// @Produce  json
// @Param   type path string true "Statement type" Enums(profit_loss, balance_sheet)
// @Param   from query string false "Period start"
// @Param   to query string false "Period end, inclusive"
// @Param   source query string false "Profit and loss source" Enums(transactions, journal)
// @Param   format query string false "Export format" Enums(csv, json)
// @Success 200 {array} domain.ExportRow
// @Failure 400 {object} dto.ErrorResponse "Invalid statement request"
// @Failure 500 {object} dto.ErrorResponse "Failed to export statement"
// @Security BearerAuth
// @Router /statements/{type}/export [get]
func (h *reportingHandler) exportStatement(c *gin.Context) {
	params, format, err := statementParams(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	session, ok := requireSession(c)
	if !ok {
		return
	}

	rows, err := h.statementService.ExportFinancialStatement(c.Request.Context(), session, params)
	if err != nil {
		respondError(c, err, "Failed to export statement")
		return
	}

	if format == "json" {
		c.JSON(http.StatusOK, rows)
		return
	}

	var buf bytes.Buffer
	if err := accounting.WriteCSV(&buf, rows); err != nil {
		respondError(c, err, "Failed to export statement")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", string(params.Type)+".csv"))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
