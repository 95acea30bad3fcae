package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"federation-payments/internal/core/domain"
	"federation-payments/internal/core/ports"
	"federation-payments/internal/core/ports/mocks"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const adminToken = "admin-token"

type testDeps struct {
	cobroSvc   *mocks.MockCobroService
	linkSvc    *mocks.MockLinkService
	reconciler *mocks.MockReconciler
	monitor    *mocks.MockStateMonitor
	feed       *mocks.MockEventFeed
	tokenSvc   *mocks.MockTokenService
	verifier   *mocks.MockWebhookVerifier
}

func newTestDeps(t *testing.T) *testDeps {
	ctrl := gomock.NewController(t)
	d := &testDeps{
		cobroSvc:   mocks.NewMockCobroService(ctrl),
		linkSvc:    mocks.NewMockLinkService(ctrl),
		reconciler: mocks.NewMockReconciler(ctrl),
		monitor:    mocks.NewMockStateMonitor(ctrl),
		feed:       mocks.NewMockEventFeed(ctrl),
		tokenSvc:   mocks.NewMockTokenService(ctrl),
		verifier:   mocks.NewMockWebhookVerifier(ctrl),
	}
	d.tokenSvc.EXPECT().Validate(adminToken).Return(&ports.TokenClaims{Subject: "admin-1", Role: "tesoreria"}, nil).AnyTimes()
	d.verifier.EXPECT().Enabled().Return(false).AnyTimes()
	return d
}

func (d *testDeps) router() *gin.Engine {
	return SetupRouter(RouterDeps{
		CobroSvc:   d.cobroSvc,
		LinkSvc:    d.linkSvc,
		Reconciler: d.reconciler,
		Monitor:    d.monitor,
		EventFeed:  d.feed,
		TokenSvc:   d.tokenSvc,
		Verifier:   d.verifier,
		Logger:     zerolog.Nop(),
	})
}

func serve(r *gin.Engine, method, target string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func admin() map[string]string {
	return map[string]string{"Authorization": "Bearer " + adminToken}
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func pendingCobro(id int64) *domain.Cobro {
	return &domain.Cobro{
		ID:      id,
		ClubID:  10,
		Amount:  150000,
		Concept: "Cuota anual",
		DueDate: time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		State:   domain.CobroStatePendiente,
	}
}

// --- Health & docs ---

type fakeChecker struct {
	name string
	err  error
}

func (f fakeChecker) Ping(context.Context) error { return f.err }
func (f fakeChecker) Name() string              { return f.name }

func TestHealthCheck(t *testing.T) {
	r := gin.New()
	r.GET("/health", HealthCheck(fakeChecker{name: "postgresql"}, fakeChecker{name: "redis"}))

	w := serve(r, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decode(t, w)["status"])
}

func TestHealthCheck_Degraded(t *testing.T) {
	r := gin.New()
	r.GET("/health", HealthCheck(fakeChecker{name: "postgresql"}, fakeChecker{name: "redis", err: errors.New("connection refused")}))

	w := serve(r, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "degraded", resp["status"])
	redis := resp["dependencies"].(map[string]interface{})["redis"].(map[string]interface{})
	assert.Equal(t, "connection refused", redis["error"])
}

func TestSwaggerSpec(t *testing.T) {
	r := gin.New()
	r.GET("/swagger/spec", SwaggerSpec)
	r.GET("/swagger", SwaggerUI)

	SetSwaggerSpec(nil)
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/swagger/spec", nil, nil).Code)

	SetSwaggerSpec([]byte("openapi: '3.0.0'\ninfo:\n  title: Test"))
	defer SetSwaggerSpec(nil)
	w := serve(r, http.MethodGet, "/swagger/spec", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "openapi")

	w = serve(r, http.MethodGet, "/swagger", nil, nil)
	assert.Contains(t, w.Body.String(), "swagger-ui")
}

// --- Admin auth ---

func TestAdminRoutes_RequireToken(t *testing.T) {
	d := newTestDeps(t)

	w := serve(d.router(), http.MethodGet, "/api/v1/cobros", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(d.router(), http.MethodGet, "/api/v1/cobros", nil, map[string]string{"Authorization": "Basic abc"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func testLogger() zerolog.Logger { return zerolog.Nop() }

func newBareRouter() *gin.Engine {
	r := gin.New()
	r.RemoveExtraSlash = true
	return r
}
