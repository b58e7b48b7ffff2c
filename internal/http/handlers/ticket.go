package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/klikphone/sav-portal/internal/models"
	"github.com/klikphone/sav-portal/internal/tickets"
)

const ticketNotFound = "Ticket not found"

type TicketView struct {
	Ticket   models.Ticket     `json:"ticket"`
	Progress tickets.Progress  `json:"progress"`
	Edit     map[string]string `json:"edit"`
	Statuses []string          `json:"statuses"`
	Parts    []models.Part     `json:"parts"`
	Contact  *tickets.Contact  `json:"contact,omitempty"`
}

func (h *Handler) ticketView(ctx context.Context, id int64) (TicketView, error) {
	t, err := h.API.GetTicket(ctx, id)
	if err != nil {
		return TicketView{}, err
	}
	parts, err := h.API.ListParts(ctx, id)
	if err != nil {
		h.Logger.Debug().Err(err).Int64("ticket_id", id).Msg("parts unavailable")
	}
	if parts == nil {
		parts = []models.Part{}
	}
	buf := tickets.NewEditBuffer(t)
	edit := make(map[string]string)
	for _, f := range tickets.Fields() {
		edit[f] = buf.Get(f)
	}
	return TicketView{
		Ticket:   t,
		Progress: tickets.ProgressOf(t.Status),
		Edit:     edit,
		Statuses: tickets.Statuses,
		Parts:    parts,
		Contact:  tickets.ContactFor(t.ClientPhone, t.TicketCode),
	}, nil
}

// @Summary Ticket detail
// @Tags tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} TicketView
// @Router /accueil/ticket/{id} [get]
func (h *Handler) TicketDetail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	view, err := h.ticketView(c.Request.Context(), id)
	if err != nil {
		h.backendError(c, err, ticketNotFound)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Save ticket edits
// @Description Applies edited fields over the current ticket and sends the non-empty ones
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} TicketView
// @Router /accueil/ticket/{id} [patch]
func (h *Handler) TicketUpdate(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var fields map[string]string
	if err := c.ShouldBindJSON(&fields); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	ctx := c.Request.Context()

	current, err := h.API.GetTicket(ctx, id)
	if err != nil {
		h.backendError(c, err, ticketNotFound)
		return
	}
	buf := tickets.NewEditBuffer(current)
	for k, v := range fields {
		if err := buf.Set(k, v); err != nil {
			writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), tickets.Fields())
			return
		}
	}
	if err := h.API.UpdateTicket(ctx, id, buf.Updates()); err != nil {
		h.backendError(c, err, ticketNotFound)
		return
	}
	h.respondTicket(c, id)
}

type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// @Summary Change ticket status
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} TicketView
// @Router /accueil/ticket/{id}/status [patch]
func (h *Handler) TicketStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req StatusRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if !tickets.IsValidStatus(req.Status) {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown status", tickets.Statuses)
		return
	}
	if err := h.API.ChangeStatus(c.Request.Context(), id, req.Status); err != nil {
		h.backendError(c, err, ticketNotFound)
		return
	}
	h.Logger.Info().Int64("ticket_id", id).Str("status", req.Status).Msg("status changed")
	h.respondTicket(c, id)
}

type TextRequest struct {
	Text string `json:"text" validate:"required"`
}

// @Summary Append an internal note
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} TicketView
// @Router /accueil/ticket/{id}/note [post]
func (h *Handler) TicketNote(c *gin.Context) {
	h.appendText(c, h.API.AddNote)
}

// @Summary Append a history entry
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} TicketView
// @Router /accueil/ticket/{id}/history [post]
func (h *Handler) TicketHistory(c *gin.Context) {
	h.appendText(c, h.API.AddHistory)
}

func (h *Handler) appendText(c *gin.Context, add func(context.Context, int64, string) error) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req TextRequest
	if !h.bindJSON(c, &req) {
		return
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "text is required", nil)
		return
	}
	if err := add(c.Request.Context(), id, text); err != nil {
		h.backendError(c, err, ticketNotFound)
		return
	}
	h.respondTicket(c, id)
}

// @Summary Delete a ticket
// @Tags tickets
// @Param id path int true "Ticket ID"
// @Success 200 {object} map[string]any
// @Router /accueil/ticket/{id} [delete]
func (h *Handler) TicketDelete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.API.DeleteTicket(c.Request.Context(), id); err != nil {
		h.backendError(c, err, ticketNotFound)
		return
	}
	h.Logger.Info().Int64("ticket_id", id).Msg("ticket deleted")
	c.JSON(http.StatusOK, gin.H{"status": "ok", "redirect": h.area()})
}

func (h *Handler) respondTicket(c *gin.Context, id int64) {
	view, err := h.ticketView(c.Request.Context(), id)
	if err != nil {
		h.backendError(c, err, ticketNotFound)
		return
	}
	c.JSON(http.StatusOK, view)
}
