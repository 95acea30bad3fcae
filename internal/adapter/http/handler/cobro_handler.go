package handler

import (
	"strconv"
	"strings"
	"time"

	"federation-payments/internal/adapter/http/dto"
	"federation-payments/internal/adapter/http/middleware"
	"federation-payments/internal/core/domain"
	"federation-payments/internal/core/ports"
	"federation-payments/pkg/apperror"
	"federation-payments/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

// CobroHandler handles cobro administration endpoints.
type CobroHandler struct {
	cobroSvc   ports.CobroService
	reconciler ports.Reconciler
	monitor    ports.StateMonitor
}

// NewCobroHandler creates a new CobroHandler.
func NewCobroHandler(cobroSvc ports.CobroService, reconciler ports.Reconciler, monitor ports.StateMonitor) *CobroHandler {
	return &CobroHandler{cobroSvc: cobroSvc, reconciler: reconciler, monitor: monitor}
}

// Create handles POST /api/v1/cobros.
func (h *CobroHandler) Create(c *gin.Context) {
	var req dto.CreateCobroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	cobro, err := h.cobroSvc.Create(c.Request.Context(), ports.CreateCobroRequest{
		ClubID:  req.ClubID,
		Amount:  req.Amount,
		Concept: req.Concept,
		DueDate: req.DueDate,
	})
	if err != nil {
		response.Error(c, adminError(err, "Cobro"))
		return
	}

	c.Set(middleware.CtxResourceID, strconv.FormatInt(cobro.ID, 10))
	response.Created(c, h.view(cobro))
}

// Get handles GET /api/v1/cobros/:id.
func (h *CobroHandler) Get(c *gin.Context) {
	id, ok := cobroIDParam(c)
	if !ok {
		return
	}

	cobro, err := h.cobroSvc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, adminError(err, "Cobro"))
		return
	}
	response.OK(c, h.view(cobro))
}

// List handles GET /api/v1/cobros?state=Pendiente,Vencido.
// The state parameter may also be repeated.
func (h *CobroHandler) List(c *gin.Context) {
	var states []domain.CobroState
	for _, raw := range c.QueryArray("state") {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				states = append(states, domain.CobroState(s))
			}
		}
	}

	cobros, err := h.cobroSvc.List(c.Request.Context(), states)
	if err != nil {
		response.Error(c, adminError(err, "Cobro"))
		return
	}
	response.OK(c, lo.Map(cobros, func(cobro domain.Cobro, _ int) dto.CobroResponse {
		return h.view(&cobro)
	}))
}

// ForceState handles POST /api/v1/cobros/:id/state.
func (h *CobroHandler) ForceState(c *gin.Context) {
	id, ok := cobroIDParam(c)
	if !ok {
		return
	}

	var req dto.ForceStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.reconciler.ForceState(c.Request.Context(), id, domain.CobroState(req.Expected), domain.CobroState(req.Next))
	if err != nil {
		response.Error(c, adminError(err, "Cobro"))
		return
	}

	if result.NewState.IsTerminal() {
		h.monitor.StopMonitoring(id)
	}
	response.OK(c, result)
}

// Checkout handles POST /api/v1/cobros/:id/checkout.
func (h *CobroHandler) Checkout(c *gin.Context) {
	id, ok := cobroIDParam(c)
	if !ok {
		return
	}

	intent, err := h.cobroSvc.CreatePaymentIntent(c.Request.Context(), id)
	if err != nil {
		response.Error(c, adminError(err, "Cobro"))
		return
	}
	response.OK(c, dto.CheckoutResponse{PreferenceID: intent.PreferenceID, RedirectURL: intent.RedirectURL})
}

// SweepOverdue handles POST /api/v1/sweeps/overdue, the on-demand form of
// the scheduled overdue sweep.
func (h *CobroHandler) SweepOverdue(c *gin.Context) {
	moved, err := h.cobroSvc.MarkOverdue(c.Request.Context(), time.Now().UTC())
	if err != nil {
		response.Error(c, adminError(err, "Cobro"))
		return
	}
	response.OK(c, dto.SweepResponse{Moved: moved})
}

func (h *CobroHandler) view(cobro *domain.Cobro) dto.CobroResponse {
	return dto.CobroResponse{Cobro: cobro, Monitored: h.monitor.IsMonitoring(cobro.ID)}
}

// cobroIDParam parses :id, writing a 400 when it is not a positive integer.
func cobroIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, apperror.Validation("cobro id must be a positive integer"))
		return 0, false
	}
	return id, true
}
