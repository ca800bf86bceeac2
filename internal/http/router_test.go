package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vitaclinic/go-medicos-web/internal/config"
	"github.com/vitaclinic/go-medicos-web/internal/domain"
)

func newRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:router_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Medico{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	// Generous limits so the test requests are never throttled.
	cfg.RateRPS = 1000
	cfg.RateBurst = 1000

	r := gin.New()
	RegisterRoutes(r, db, cfg)
	return r, db
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRouter_Health(t *testing.T) {
	r, _ := newRouter(t)

	w := get(r, "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body["status"] != "ok" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestRouter_ListingPage(t *testing.T) {
	r, db := newRouter(t)
	if err := db.Create(&domain.Medico{Nombre: "Ana García", Especialidad: "Cardiología", Email: "ana@example.com"}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	w := get(r, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Ana García") {
		t.Fatalf("listing missing seeded médico: %s", w.Body.String())
	}
}

func TestRouter_RequestIDPropagated(t *testing.T) {
	r, _ := newRouter(t)

	w := get(r, "/health")
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("X-Request-ID not set")
	}

	// A provided id is echoed back.
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "rid-42")
	r.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got != "rid-42" {
		t.Fatalf("X-Request-ID = %q", got)
	}
}

func TestRouter_SecurityHeaders(t *testing.T) {
	r, _ := newRouter(t)

	h := get(r, "/health").Header()
	if h.Get("X-Content-Type-Options") != "nosniff" || h.Get("X-Frame-Options") != "DENY" {
		t.Fatalf("security headers missing: %#v", h)
	}
}

func TestRouter_UnknownRouteIsJSON404(t *testing.T) {
	r, _ := newRouter(t)

	w := get(r, "/nope")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Fatalf("Content-Type = %q", ct)
	}
}

func TestRouter_DeleteRoutesBothResolve(t *testing.T) {
	r, db := newRouter(t)
	for _, email := range []string{"a@example.com", "b@example.com"} {
		if err := db.Create(&domain.Medico{Nombre: "Ana García", Especialidad: "Cardiología", Email: email}).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	var all []domain.Medico
	if err := db.Find(&all).Error; err != nil || len(all) != 2 {
		t.Fatalf("seed readback: %v", err)
	}

	for i, path := range []string{"/medico/%d", "/medico/eliminar/%d"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf(path, all[i].ID), nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: status = %d, body: %s", path, w.Code, w.Body.String())
		}
	}
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	r, _ := newRouter(t)

	// Generate one request so counters exist, then scrape.
	get(r, "/health")
	w := get(r, "/metrics")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "http_requests_total") {
		t.Fatalf("metrics output missing http_requests_total")
	}
}
