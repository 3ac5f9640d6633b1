package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/money_ledger/internal/core/ports/services"
	"github.com/SscSPs/money_ledger/internal/dto"
	"github.com/SscSPs/money_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests for journal entries and their lifecycle.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

func newJournalHandler(js portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: js}
}

func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	journals := rg.Group("/journals")
	{
		journals.POST("", h.createJournalEntry)
		journals.GET("", h.listJournalEntries)
		journals.GET("/:journalID", h.getJournalEntry)
		journals.PUT("/:journalID", h.updateDraftJournalEntry)
		journals.POST("/:journalID/post", h.postJournalEntry)
		journals.POST("/:journalID/void", h.voidJournalEntry)
		journals.POST("/:journalID/reverse", h.reverseJournalEntry)
	}
}

// createJournalEntry godoc
// @Summary Record a journal entry
// @Description Validates a double-entry journal entry. Posted entries (the default) update account balances; drafts do not.
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateJournalEntryRequest true "Journal entry"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} dto.ErrorResponse "Entry violates a double-entry rule"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Failed to create journal entry"
// @Security BearerAuth
// @Router /journals [post]
func (h *journalHandler) createJournalEntry(c *gin.Context) {
	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	session, ok := requireSession(c)
	if !ok {
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to create journal entry", slog.Int("lines", len(req.Lines)), slog.String("status", string(req.Status)))

	entry, err := h.journalService.CreateJournalEntry(c.Request.Context(), session, req)
	if err != nil {
		respondError(c, err, "Failed to create journal entry")
		return
	}

	logger.Info("Journal entry created", slog.String("journal_id", entry.JournalID), slog.String("status", string(entry.Status)))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// getJournalEntry godoc
// @Summary Get a journal entry
// @Tags journals
// @Produce  json
// @Param   journalID path string true "Journal ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Journal entry not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve journal entry"
// @Security BearerAuth
// @Router /journals/{journalID} [get]
func (h *journalHandler) getJournalEntry(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	entry, err := h.journalService.GetJournalEntry(c.Request.Context(), session, c.Param("journalID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// listJournalEntries godoc
// @Summary List journal entries
// @Description Lists entries newest first using token based pagination
// @Tags journals
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Param   status query string false "Filter by status" Enums(DRAFT, POSTED, VOID)
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Failed to list journal entries"
// @Security BearerAuth
// @Router /journals [get]
func (h *journalHandler) listJournalEntries(c *gin.Context) {
	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}
	session, ok := requireSession(c)
	if !ok {
		return
	}

	res, err := h.journalService.ListJournalEntries(c.Request.Context(), session, params)
	if err != nil {
		respondError(c, err, "Failed to list journal entries")
		return
	}
	c.JSON(http.StatusOK, res)
}

// updateDraftJournalEntry godoc
// @Summary Edit a draft journal entry
// @Description Replaces the description, date and lines of a draft. Posted and void entries are immutable.
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   journalID path string true "Journal ID"
// @Param   entry body dto.UpdateDraftJournalEntryRequest true "Draft contents"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid draft"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Journal entry not found"
// @Failure 409 {object} dto.ErrorResponse "Entry is not a draft"
// @Failure 500 {object} dto.ErrorResponse "Failed to update journal entry"
// @Security BearerAuth
// @Router /journals/{journalID} [put]
func (h *journalHandler) updateDraftJournalEntry(c *gin.Context) {
	var req dto.UpdateDraftJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	session, ok := requireSession(c)
	if !ok {
		return
	}

	entry, err := h.journalService.UpdateDraftJournalEntry(c.Request.Context(), session, c.Param("journalID"), req)
	if err != nil {
		respondError(c, err, "Failed to update journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// postJournalEntry godoc
// @Summary Post a draft
// @Tags journals
// @Produce  json
// @Param   journalID path string true "Journal ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 400 {object} dto.ErrorResponse "Draft violates a double-entry rule"
// @Failure 404 {object} dto.ErrorResponse "Journal entry not found"
// @Failure 409 {object} dto.ErrorResponse "Entry is not a draft"
// @Security BearerAuth
// @Router /journals/{journalID}/post [post]
func (h *journalHandler) postJournalEntry(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	entry, err := h.journalService.PostJournalEntry(c.Request.Context(), session, c.Param("journalID"))
	if err != nil {
		respondError(c, err, "Failed to post journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// voidJournalEntry godoc
// @Summary Void a posted entry
// @Description Marks the entry void and reverts its effect on account balances
// @Tags journals
// @Produce  json
// @Param   journalID path string true "Journal ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} dto.ErrorResponse "Journal entry not found"
// @Failure 409 {object} dto.ErrorResponse "Entry is not posted"
// @Security BearerAuth
// @Router /journals/{journalID}/void [post]
func (h *journalHandler) voidJournalEntry(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	entry, err := h.journalService.VoidJournalEntry(c.Request.Context(), session, c.Param("journalID"))
	if err != nil {
		respondError(c, err, "Failed to void journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// reverseJournalEntry godoc
// @Summary Reverse a posted entry
// @Description Posts a new entry with debits and credits swapped. The original stays posted.
// @Tags journals
// @Produce  json
// @Param   journalID path string true "Journal ID"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 404 {object} dto.ErrorResponse "Journal entry not found"
// @Failure 409 {object} dto.ErrorResponse "Entry cannot be reversed"
// @Security BearerAuth
// @Router /journals/{journalID}/reverse [post]
func (h *journalHandler) reverseJournalEntry(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	reversal, err := h.journalService.ReverseJournalEntry(c.Request.Context(), session, c.Param("journalID"))
	if err != nil {
		respondError(c, err, "Failed to reverse journal entry")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Journal entry reversed",
		slog.String("journal_id", c.Param("journalID")), slog.String("reversal_id", reversal.JournalID))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(reversal))
}
