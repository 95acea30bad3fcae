package handler

import (
	"federation-payments/internal/adapter/http/dto"
	"federation-payments/internal/core/domain"
	"federation-payments/internal/core/ports"
	"federation-payments/pkg/apperror"
	"federation-payments/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

// MonitorHandler exposes the polling monitor to administrators.
type MonitorHandler struct {
	cobroSvc ports.CobroService
	monitor  ports.StateMonitor
}

// NewMonitorHandler creates a new MonitorHandler.
func NewMonitorHandler(cobroSvc ports.CobroService, monitor ports.StateMonitor) *MonitorHandler {
	return &MonitorHandler{cobroSvc: cobroSvc, monitor: monitor}
}

// Start handles POST /api/v1/cobros/:id/monitor.
func (h *MonitorHandler) Start(c *gin.Context) {
	id, ok := cobroIDParam(c)
	if !ok {
		return
	}

	cobro, err := h.cobroSvc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, adminError(err, "Cobro"))
		return
	}
	if cobro.IsTerminal() {
		response.Error(c, apperror.ErrCobroClosed(string(cobro.State)))
		return
	}

	h.monitor.StartMonitoring(cobro.ID, cobro.State)
	response.OK(c, h.status(id))
}

// Stop handles DELETE /api/v1/cobros/:id/monitor.
func (h *MonitorHandler) Stop(c *gin.Context) {
	id, ok := cobroIDParam(c)
	if !ok {
		return
	}
	h.monitor.StopMonitoring(id)
	response.OK(c, h.status(id))
}

// Status handles GET /api/v1/cobros/:id/monitor.
func (h *MonitorHandler) Status(c *gin.Context) {
	id, ok := cobroIDParam(c)
	if !ok {
		return
	}
	response.OK(c, h.status(id))
}

// List handles GET /api/v1/monitoring.
func (h *MonitorHandler) List(c *gin.Context) {
	response.OK(c, h.monitor.Entries())
}

func (h *MonitorHandler) status(id int64) dto.MonitoringStatusResponse {
	resp := dto.MonitoringStatusResponse{CobroID: id}
	if entry, found := lo.Find(h.monitor.Entries(), func(e domain.MonitoringEntry) bool { return e.CobroID == id }); found {
		resp.Monitoring = true
		resp.Entry = &entry
	}
	return resp
}
