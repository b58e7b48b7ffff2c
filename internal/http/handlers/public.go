package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/klikphone/sav-portal/internal/api"
	"github.com/klikphone/sav-portal/internal/models"
	"github.com/klikphone/sav-portal/internal/nav"
	"github.com/klikphone/sav-portal/internal/session"
	"github.com/klikphone/sav-portal/internal/tickets"
)

type loginTarget struct {
	Role  session.Role `json:"role"`
	Login string       `json:"login"`
	Home  string       `json:"home"`
}

// Landing is the public home: shop settings, the staff login targets and
// the current session. Backend failures leave the optional parts empty.
func (h *Handler) Landing(c *gin.Context) {
	ctx := c.Request.Context()
	resp := gin.H{
		"session": h.Gate.Snapshot(),
		"logins": []loginTarget{
			{Role: session.RoleFrontDesk, Login: "/login/front-desk", Home: nav.Home(session.RoleFrontDesk)},
			{Role: session.RoleTechnician, Login: "/login/technician", Home: nav.Home(session.RoleTechnician)},
		},
		"tracking": "/suivi",
		"intake":   "/client",
	}
	if cfg, err := h.API.PublicConfig(ctx); err == nil {
		resp["config"] = cfg
	} else {
		h.Logger.Debug().Err(err).Msg("public config unavailable")
	}
	if team, err := h.API.Team(ctx, true); err == nil {
		resp["team"] = team
	} else {
		h.Logger.Debug().Err(err).Msg("team unavailable")
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Current session
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]any
// @Router /session [get]
func (h *Handler) Session(c *gin.Context) {
	snap := h.Gate.Snapshot()
	resp := gin.H{"session": snap}
	if id, ok := h.Gate.Identity(); ok {
		resp["home"] = nav.Home(id.Role)
		resp["nav"] = nav.Items(id.Role)
	}
	c.JSON(http.StatusOK, resp)
}

type LoginRequest struct {
	Pin      string `json:"pin" validate:"required,numeric,min=4,max=8"`
	Username string `json:"username" validate:"max=64"`
}

// @Summary Staff login
// @Tags auth
// @Accept json
// @Produce json
// @Param role path string true "front-desk or technician"
// @Success 200 {object} map[string]any
// @Failure 401 {object} map[string]any
// @Failure 409 {object} map[string]any
// @Router /login/{role} [post]
func (h *Handler) Login(c *gin.Context) {
	role, ok := session.ParseRole(c.Param("role"))
	if !ok {
		writeError(c, http.StatusNotFound, "NOT_FOUND", "Unknown staff area", nil)
		return
	}
	var req LoginRequest
	if !h.bindJSON(c, &req) {
		return
	}

	id, err := h.API.Login(c.Request.Context(), req.Pin, role, strings.TrimSpace(req.Username))
	switch {
	case err == nil:
	case errors.Is(err, session.ErrLoginInFlight):
		writeError(c, http.StatusConflict, "LOGIN_IN_PROGRESS", "A login is already in progress", nil)
		return
	case errors.Is(err, session.ErrAlreadyAuthenticated):
		writeError(c, http.StatusConflict, "ALREADY_AUTHENTICATED", "Log out before switching user", h.Gate.Snapshot())
		return
	case errors.Is(err, api.ErrInvalidCredentials):
		writeError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid PIN", nil)
		return
	default:
		h.backendError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session": h.Gate.Snapshot(),
		"home":    nav.Home(id.Role),
		"nav":     nav.Items(id.Role),
	})
}

// @Summary Logout
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]any
// @Router /logout [post]
func (h *Handler) Logout(c *gin.Context) {
	if err := h.API.Logout(c.Request.Context()); err != nil {
		h.Logger.Error().Err(err).Msg("logout")
		writeError(c, http.StatusInternalServerError, "STATE_ERROR", "Failed to clear session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": h.Gate.Snapshot()})
}

type TrackingView struct {
	Code        string           `json:"ticket_code"`
	Category    string           `json:"category"`
	Brand       string           `json:"brand"`
	Model       string           `json:"model"`
	FaultType   string           `json:"fault_type"`
	Status      string           `json:"status"`
	Closed      bool             `json:"closed"`
	Quote       *float64         `json:"estimated_quote"`
	FinalPrice  *float64         `json:"final_price"`
	DateCreated string           `json:"date_created"`
	DateUpdated string           `json:"date_updated"`
	Progress    tickets.Progress `json:"progress"`
}

// @Summary Track a repair by code
// @Tags tracking
// @Produce json
// @Param ticket query string true "Ticket code"
// @Success 200 {object} TrackingView
// @Failure 404 {object} map[string]any
// @Router /suivi [get]
func (h *Handler) Track(c *gin.Context) {
	code := strings.ToUpper(strings.TrimSpace(c.Query("ticket")))
	if code == "" {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "ticket is required", nil)
		return
	}
	t, err := h.API.GetTicketByCode(c.Request.Context(), code)
	if err != nil {
		h.backendError(c, err, "No ticket found with this code.")
		return
	}
	model := t.Model
	if model == "" {
		model = t.ModelOther
	}
	c.JSON(http.StatusOK, TrackingView{
		Code:        t.TicketCode,
		Category:    t.Category,
		Brand:       t.Brand,
		Model:       model,
		FaultType:   t.FaultType,
		Status:      t.Status,
		Closed:      t.Status == tickets.StatusClosed,
		Quote:       t.EstimatedQuote,
		FinalPrice:  t.FinalPrice,
		DateCreated: t.DateCreated,
		DateUpdated: t.DateUpdated,
		Progress:    tickets.ProgressOf(t.Status),
	})
}

func (h *Handler) CatalogCategories(c *gin.Context) {
	items, err := h.API.Categories(c.Request.Context())
	if err != nil {
		h.backendError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) CatalogFaults(c *gin.Context) {
	items, err := h.API.Faults(c.Request.Context())
	if err != nil {
		h.backendError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) CatalogBrands(c *gin.Context) {
	items, err := h.API.Brands(c.Request.Context(), c.Query("categorie"))
	if err != nil {
		h.backendError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) CatalogModels(c *gin.Context) {
	items, err := h.API.Models(c.Request.Context(), c.Query("categorie"), c.Query("marque"))
	if err != nil {
		h.backendError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type IntakeRequest struct {
	LastName      string `json:"last_name" validate:"required"`
	FirstName     string `json:"first_name"`
	Phone         string `json:"phone" validate:"required,min=6,max=20"`
	Email         string `json:"email" validate:"omitempty,email"`
	Category      string `json:"category" validate:"required"`
	Brand         string `json:"brand" validate:"required"`
	Model         string `json:"model"`
	ModelOther    string `json:"model_other"`
	IMEI          string `json:"imei"`
	FaultType     string `json:"fault_type" validate:"required"`
	FaultDetail   string `json:"fault_detail"`
	UnlockPin     string `json:"unlock_pin"`
	UnlockPattern string `json:"unlock_pattern"`
	Notes         string `json:"client_notes"`
}

// @Summary Customer intake
// @Description Registers (or finds) the client by phone and opens a ticket
// @Tags intake
// @Accept json
// @Produce json
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /client [post]
func (h *Handler) Intake(c *gin.Context) {
	var req IntakeRequest
	if !h.bindJSON(c, &req) {
		return
	}
	ctx := c.Request.Context()

	client, err := h.API.CreateOrGetClient(ctx, models.ClientCreate{
		LastName:  strings.TrimSpace(req.LastName),
		FirstName: strings.TrimSpace(req.FirstName),
		Phone:     strings.TrimSpace(req.Phone),
		Email:     strings.TrimSpace(req.Email),
	})
	if err != nil {
		h.backendError(c, err, "")
		return
	}
	t, err := h.API.CreateTicket(ctx, models.TicketCreate{
		ClientID:      client.ID,
		Category:      req.Category,
		Brand:         req.Brand,
		Model:         req.Model,
		ModelOther:    req.ModelOther,
		IMEI:          req.IMEI,
		FaultType:     req.FaultType,
		FaultDetail:   req.FaultDetail,
		UnlockPin:     req.UnlockPin,
		UnlockPattern: req.UnlockPattern,
		ClientNotes:   req.Notes,
	})
	if err != nil {
		h.backendError(c, err, "")
		return
	}
	h.Logger.Info().Str("ticket_code", t.TicketCode).Int64("client_id", client.ID).Msg("ticket created")
	c.JSON(http.StatusCreated, gin.H{
		"ticket_id":   t.ID,
		"ticket_code": t.TicketCode,
		"client_id":   client.ID,
		"tracking":    "/suivi?ticket=" + t.TicketCode,
	})
}
