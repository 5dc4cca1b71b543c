package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type noopModule struct{ registered bool }

func (m *noopModule) RegisterRoutes(api *gin.RouterGroup) {
	m.registered = true
	api.GET("/noop", func(c *gin.Context) { c.Status(http.StatusNoContent) })
}

func TestRegisterRoutes_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	if err := RegisterRoutes(nil, &RouteDeps{Modules: []Module{&noopModule{}}}); err == nil {
		t.Error("expected error for nil router")
	}
	if err := RegisterRoutes(gin.New(), nil); err == nil {
		t.Error("expected error for nil deps")
	}
	if err := RegisterRoutes(gin.New(), &RouteDeps{}); err == nil {
		t.Error("expected error for empty module list")
	}
	if err := RegisterRoutes(gin.New(), &RouteDeps{Modules: []Module{nil}}); err == nil {
		t.Error("expected error for nil module")
	}
}

func TestRegisterRoutes_ModulesMountedUnderAPIPrefix(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	m := &noopModule{}

	if err := RegisterRoutes(r, &RouteDeps{Modules: []Module{m}}); err != nil {
		t.Fatalf("RegisterRoutes: %v", err)
	}
	if !m.registered {
		t.Fatal("module was not registered")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/noop", nil))
	if w.Code != http.StatusNoContent {
		t.Errorf("GET /api/v1/noop status = %d, want %d", w.Code, http.StatusNoContent)
	}
}

func TestHealthHandler_NilDBReportsDegraded(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", healthHandler(nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusServiceUnavailable)
	}

	var body struct {
		Status     string            `json:"status"`
		Components map[string]string `json:"components"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "degraded" || body.Components["database"] != "error" {
		t.Errorf("health body = %s", w.Body.String())
	}
}
