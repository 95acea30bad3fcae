package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"federation-payments/internal/core/domain"
	"federation-payments/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type auditRoute struct {
	action       domain.AuditAction
	resourceType string
	param        string
}

// auditedRoutes maps "METHOD route-template" to the audit record it produces.
var auditedRoutes = map[string]auditRoute{
	"POST /api/v1/cobros":               {domain.AuditActionCobroCreate, "cobro", ""},
	"POST /api/v1/cobros/:id/state":     {domain.AuditActionForceState, "cobro", "id"},
	"POST /api/v1/cobros/:id/checkout":  {domain.AuditActionCheckout, "cobro", "id"},
	"POST /api/v1/cobros/:id/monitor":   {domain.AuditActionMonitorStart, "cobro", "id"},
	"DELETE /api/v1/cobros/:id/monitor": {domain.AuditActionMonitorStop, "cobro", "id"},
	"POST /api/v1/cobros/:id/links":     {domain.AuditActionLinkGenerate, "cobro", "id"},
	"PATCH /api/v1/links/:id":           {domain.AuditActionLinkToggle, "public_link", "id"},
	"DELETE /api/v1/links/:id":          {domain.AuditActionLinkDelete, "public_link", "id"},
	"POST /pagar/:slug/checkout":        {domain.AuditActionCheckout, "public_link", "slug"},
}

// AuditLog records successful administrative writes after the handler ran.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			return
		}
		route, ok := auditedRoutes[c.Request.Method+" "+c.FullPath()]
		if !ok {
			return
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"request_id": c.GetString(CtxRequestID),
		})

		entry := &domain.AuditLog{
			ID:           uuid.New(),
			ActorID:      ActorID(c),
			Action:       route.action,
			ResourceType: route.resourceType,
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now().UTC(),
		}
		if route.param != "" {
			entry.ResourceID = c.Param(route.param)
		}
		if v, ok := c.Get(CtxResourceID); ok && entry.ResourceID == "" {
			if s, ok := v.(string); ok {
				entry.ResourceID = s
			}
		}

		auditSvc.Log(c.Request.Context(), entry)
	}
}

// CtxResourceID lets a handler name the resource it created, for routes
// whose path carries no id.
const CtxResourceID = "audit_resource_id"
