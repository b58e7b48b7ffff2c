package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/klikphone/sav-portal/internal/models"
)

const clientNotFound = "Client not found"

func (h *Handler) ClientsList(c *gin.Context) {
	items, err := h.API.ListClients(c.Request.Context(), strings.TrimSpace(c.Query("search")))
	if err != nil {
		h.backendError(c, err, "")
		return
	}
	if items == nil {
		items = []models.Client{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// ClientDetail returns the client card with its ticket history.
func (h *Handler) ClientDetail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	client, err := h.API.GetClient(ctx, id)
	if err != nil {
		h.backendError(c, err, clientNotFound)
		return
	}
	history, err := h.API.ClientTickets(ctx, id)
	if err != nil {
		h.backendError(c, err, clientNotFound)
		return
	}
	if history == nil {
		history = []models.Ticket{}
	}
	c.JSON(http.StatusOK, gin.H{"client": client, "tickets": history})
}

func (h *Handler) ClientUpdate(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil || len(updates) == 0 {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", nil)
		return
	}
	client, err := h.API.UpdateClient(c.Request.Context(), id, updates)
	if err != nil {
		h.backendError(c, err, clientNotFound)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *Handler) ClientDelete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.API.DeleteClient(c.Request.Context(), id); err != nil {
		h.backendError(c, err, clientNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) PartsList(c *gin.Context) {
	var ticketID int64
	if raw := c.Query("ticket_id"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "ticket_id must be an integer", nil)
			return
		}
		ticketID = v
	}
	items, err := h.API.ListParts(c.Request.Context(), ticketID)
	if err != nil {
		h.backendError(c, err, "")
		return
	}
	if items == nil {
		items = []models.Part{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type PartRequest struct {
	TicketID    int64   `json:"ticket_id" validate:"required,gt=0"`
	Description string  `json:"description" validate:"required"`
	Supplier    string  `json:"supplier"`
	Reference   string  `json:"reference"`
	Price       float64 `json:"price" validate:"gte=0"`
	Notes       string  `json:"notes"`
}

func (h *Handler) PartCreate(c *gin.Context) {
	var req PartRequest
	if !h.bindJSON(c, &req) {
		return
	}
	part, err := h.API.CreatePart(c.Request.Context(), models.Part{
		TicketID:    req.TicketID,
		Description: req.Description,
		Supplier:    req.Supplier,
		Reference:   req.Reference,
		Price:       req.Price,
		Notes:       req.Notes,
	})
	if err != nil {
		h.backendError(c, err, ticketNotFound)
		return
	}
	c.JSON(http.StatusCreated, part)
}

func (h *Handler) PartUpdate(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil || len(updates) == 0 {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", nil)
		return
	}
	part, err := h.API.UpdatePart(c.Request.Context(), id, updates)
	if err != nil {
		h.backendError(c, err, "Part not found")
		return
	}
	c.JSON(http.StatusOK, part)
}

func (h *Handler) PartDelete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.API.DeletePart(c.Request.Context(), id); err != nil {
		h.backendError(c, err, "Part not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) ConfigList(c *gin.Context) {
	params, err := h.API.Config(c.Request.Context())
	if err != nil {
		h.backendError(c, err, "")
		return
	}
	if params == nil {
		params = []models.Param{}
	}
	c.JSON(http.StatusOK, gin.H{"items": params})
}

type ParamRequest struct {
	Key   string `json:"key" validate:"required"`
	Value string `json:"value"`
}

func (h *Handler) ConfigSet(c *gin.Context) {
	var req ParamRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if err := h.API.SetParam(c.Request.Context(), req.Key, req.Value); err != nil {
		h.backendError(c, err, "")
		return
	}
	h.Logger.Info().Str("key", req.Key).Msg("setting updated")
	c.JSON(http.StatusOK, models.Param{Key: req.Key, Value: req.Value})
}
