package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"federation-payments/internal/core/domain"
	"federation-payments/internal/core/ports/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuditLog_ForceState(t *testing.T) {
	ctrl := gomock.NewController(t)
	auditSvc := mocks.NewMockAuditService(ctrl)

	var got *domain.AuditLog
	auditSvc.EXPECT().Log(gomock.Any(), gomock.Any()).Do(func(_ context.Context, entry *domain.AuditLog) {
		got = entry
	})

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(CtxActorID, "admin-1")
		c.Next()
	}, AuditLog(auditSvc))
	r.POST("/api/v1/cobros/:id/state", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/cobros/42/state", nil))

	require.NotNil(t, got)
	assert.Equal(t, domain.AuditActionForceState, got.Action)
	assert.Equal(t, "cobro", got.ResourceType)
	assert.Equal(t, "42", got.ResourceID)
	require.NotNil(t, got.ActorID)
	assert.Equal(t, "admin-1", *got.ActorID)
	assert.Contains(t, got.Details, `"status":200`)
}

func TestAuditLog_CreatedResourceFromContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	auditSvc := mocks.NewMockAuditService(ctrl)

	auditSvc.EXPECT().Log(gomock.Any(), gomock.Any()).Do(func(_ context.Context, entry *domain.AuditLog) {
		assert.Equal(t, domain.AuditActionCobroCreate, entry.Action)
		assert.Equal(t, "77", entry.ResourceID)
		assert.Nil(t, entry.ActorID)
	})

	r := gin.New()
	r.Use(AuditLog(auditSvc))
	r.POST("/api/v1/cobros", func(c *gin.Context) {
		c.Set(CtxResourceID, "77")
		c.Status(http.StatusCreated)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/cobros", nil))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAuditLog_SkipsFailuresAndReads(t *testing.T) {
	ctrl := gomock.NewController(t)
	auditSvc := mocks.NewMockAuditService(ctrl)
	auditSvc.EXPECT().Log(gomock.Any(), gomock.Any()).Times(0)

	r := gin.New()
	r.Use(AuditLog(auditSvc))
	r.POST("/api/v1/cobros/:id/state", func(c *gin.Context) { c.Status(http.StatusConflict) })
	r.GET("/api/v1/cobros/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodPost, "/api/v1/cobros/1/state", nil),
		httptest.NewRequest(http.MethodGet, "/api/v1/cobros/1", nil),
	} {
		r.ServeHTTP(httptest.NewRecorder(), req)
	}
}
