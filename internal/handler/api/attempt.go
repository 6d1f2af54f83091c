package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "smartbox-gateway/internal/handler/dto/request"
	resdto "smartbox-gateway/internal/handler/dto/response"
	"smartbox-gateway/internal/handler/httperr"
	"smartbox-gateway/internal/handler/middleware"
	"smartbox-gateway/internal/usecase"

	"smartbox-gateway/internal/domain/box"

	"github.com/gin-gonic/gin"
)

type AttemptHandler struct {
	commands usecase.UnlockCommands
	queries  usecase.AttemptQueries
}

func NewAttemptHandler(commands usecase.UnlockCommands, queries usecase.AttemptQueries) *AttemptHandler {
	return &AttemptHandler{
		commands: commands,
		queries:  queries,
	}
}

// @Summary Start unlock attempt
// @Description Verify entitlement for the scanned box and begin emitting the open signal
// @Tags attempts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.StartAttemptRequest true "Attempt request"
// @Success 200 {object} resdto.AttemptResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /attempts [post]
func (h *AttemptHandler) Start(c *gin.Context) {
	pr, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.StartAttemptRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.commands.Start(c.Request.Context(), pr, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidQRCode):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid QR code",
			})
		case errors.Is(err, usecase.ErrInvalidAction),
			errors.Is(err, usecase.ErrReservationRequired),
			errors.Is(err, usecase.ErrOrderRequired):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid attempt parameters",
			})
		case errors.Is(err, usecase.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, usecase.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errors.Is(err, usecase.ErrLedgerLookupFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Ledger is unavailable",
			})
		case errors.Is(err, usecase.ErrAttemptInFlight):
			c.JSON(http.StatusConflict, gin.H{
				"error": "An unlock attempt is already in progress",
			})
		default:
			// Terminal protocol failures (ownership, signal, playback) are
			// part of the attempt's observable state, not transport errors.
			c.JSON(http.StatusOK, resdto.FromAttemptView(view))
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAttemptView(view))
}

// @Summary Get current attempt
// @Description Observable state of the principal's current unlock attempt
// @Tags attempts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.AttemptResponse
// @Router /attempts/current [get]
func (h *AttemptHandler) Current(c *gin.Context) {
	pr, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, _ := h.commands.Current(c.Request.Context(), pr)
	c.JSON(http.StatusOK, resdto.FromAttemptView(view))
}

// @Summary Confirm physical outcome
// @Description Report whether the box physically opened; stops the signal and applies the pending action
// @Tags attempts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ConfirmAttemptRequest true "Confirmation"
// @Success 200 {object} resdto.AttemptResponse
// @Failure 409 {object} map[string]string
// @Router /attempts/confirm [post]
func (h *AttemptHandler) Confirm(c *gin.Context) {
	pr, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.ConfirmAttemptRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.commands.Confirm(c.Request.Context(), pr, *req.Successful)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrConfirmationNotPending),
			errors.Is(err, usecase.ErrAttemptSuperseded):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No confirmation is pending",
			})
		default:
			// Ledger failure after a successful open: the view carries the
			// "box opened, record not updated" outcome.
			c.JSON(http.StatusOK, resdto.FromAttemptView(view))
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAttemptView(view))
}

// @Summary Submit fulfillment notes
// @Description Operator notes collected after the box is confirmed open; dispatches the fulfillment
// @Tags attempts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubmitNotesRequest true "Notes"
// @Success 200 {object} resdto.AttemptResponse
// @Failure 409 {object} map[string]string
// @Router /attempts/notes [post]
func (h *AttemptHandler) SubmitNotes(c *gin.Context) {
	pr, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.SubmitNotesRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.commands.SubmitNotes(c.Request.Context(), pr, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotesNotExpected),
			errors.Is(err, usecase.ErrAttemptSuperseded):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Notes are not expected right now",
			})
		default:
			c.JSON(http.StatusOK, resdto.FromAttemptView(view))
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAttemptView(view))
}

// @Summary Cancel attempt
// @Description Cancel the current attempt; any emission stops before this call returns
// @Tags attempts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.AttemptResponse
// @Router /attempts/cancel [post]
func (h *AttemptHandler) Cancel(c *gin.Context) {
	pr, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, _ := h.commands.Cancel(c.Request.Context(), pr)
	c.JSON(http.StatusOK, resdto.FromAttemptView(view))
}

// @Summary Reset attempt
// @Description Clear a terminal attempt and return to idle
// @Tags attempts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.AttemptResponse
// @Router /attempts/reset [post]
func (h *AttemptHandler) Reset(c *gin.Context) {
	pr, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, _ := h.commands.Reset(c.Request.Context(), pr)
	c.JSON(http.StatusOK, resdto.FromAttemptView(view))
}

// @Summary Box attempt history
// @Description Recent terminal unlock attempts for one of the host's boxes
// @Tags attempts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Box ID"
// @Param limit query int false "Max rows"
// @Success 200 {array} resdto.AttemptHistoryItem
// @Failure 403 {object} map[string]string
// @Router /boxes/{id}/attempts [get]
func (h *AttemptHandler) History(c *gin.Context) {
	pr, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	boxID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || boxID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid box ID format",
		})
		return
	}

	limit := 20
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, parseErr := strconv.Atoi(limitStr); parseErr == nil {
			limit = parsed
		}
	}

	records, err := h.queries.RecentAttempts(c.Request.Context(), pr, box.ID(boxID), limit)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrHistoryForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Attempt history is only visible to the owning host", nil)
		case errors.Is(err, usecase.ErrOwnershipLookupFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Ownership lookup failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load attempt history", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuditRecords(records))
}
