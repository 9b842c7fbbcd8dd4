package complyboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/complyboard/complyboard/config"
	"github.com/complyboard/complyboard/report"
)

func testConfig() *config.Config {
	return &config.Config{
		Store: config.StoreConfig{Backend: "memory"},
		Features: config.FeatureFlags{
			ChartsEnabled: true,
			SeedDemoData:  true,
		},
	}
}

func newTestApp(t *testing.T) (*Complyboard, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cb, err := New(testConfig())
	if err != nil {
		t.Fatalf("Failed to create instance: %v", err)
	}
	t.Cleanup(func() { cb.Close() })

	router := gin.New()
	cb.RegisterRoutes(router)
	return cb, router
}

func TestNew(t *testing.T) {
	cb, err := New(testConfig())
	if err != nil {
		t.Fatalf("Failed to create instance: %v", err)
	}
	defer cb.Close()

	contracts, err := cb.GetStore().ListContracts()
	if err != nil {
		t.Fatalf("Failed to list contracts: %v", err)
	}
	if len(contracts) != 20 {
		t.Errorf("Expected 20 seeded contracts, got %d", len(contracts))
	}
}

func TestNewNilConfig(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("Expected error for nil config")
	}
}

func TestNewUnknownBackend(t *testing.T) {
	cfg := testConfig()
	cfg.Store.Backend = "cassandra"
	if _, err := New(cfg); err == nil {
		t.Error("Expected error for unknown backend")
	}
}

func TestHandleAnalytics(t *testing.T) {
	_, router := newTestApp(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/analytics", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Compliance Analytics") {
		t.Error("Expected analytics page content")
	}
}

func TestHandleReviewsWithFilter(t *testing.T) {
	_, router := newTestApp(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/reviews?risk=high", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Enterprise License Agreement") {
		t.Error("Expected high-risk contract in filtered results")
	}
	if strings.Contains(w.Body.String(), "Master Service Agreement") {
		t.Error("Expected low-risk contracts to be filtered out")
	}
}

func TestHandleContractDetailNotFound(t *testing.T) {
	_, router := newTestApp(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/contracts/no-such-id", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestHandleApprove(t *testing.T) {
	cb, router := newTestApp(t)

	form := url.Values{"term_id": {"1"}, "sub_point_index": {"0"}}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/dashboard/contracts/1/attestations/approve",
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("Expected 303, got %d", w.Code)
	}

	atts, err := cb.GetStore().ListAttestations("1")
	if err != nil {
		t.Fatalf("Failed to list attestations: %v", err)
	}
	if len(atts) != 1 {
		t.Fatalf("Expected 1 attestation, got %d", len(atts))
	}
	if !atts[0].Agreed {
		t.Error("Expected approved attestation")
	}
	if atts[0].ID == "" {
		t.Error("Expected attestation id to be set")
	}
}

func TestHandleOverrideRejectsBadValue(t *testing.T) {
	_, router := newTestApp(t)

	form := url.Values{"term_id": {"1"}, "sub_point_index": {"0"}, "value": {"maybe"}}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/dashboard/contracts/1/attestations/override",
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
}

func TestHandleAttestIncomplete(t *testing.T) {
	_, router := newTestApp(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/dashboard/contracts/1/attest", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("Expected 409 for incomplete review, got %d", w.Code)
	}
}

func TestHandleSidebarToggle(t *testing.T) {
	_, router := newTestApp(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/dashboard/sidebar/toggle", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Header().Get("Set-Cookie"), "sidebar=collapsed") {
		t.Errorf("Expected collapsed cookie, got %q", w.Header().Get("Set-Cookie"))
	}

	// Toggling with the collapsed cookie expands again
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/dashboard/sidebar/toggle", nil)
	req.AddCookie(&http.Cookie{Name: "sidebar", Value: "collapsed"})
	router.ServeHTTP(w, req)

	if !strings.Contains(w.Header().Get("Set-Cookie"), "sidebar=expanded") {
		t.Errorf("Expected expanded cookie, got %q", w.Header().Get("Set-Cookie"))
	}
}

func TestSidebarCookieCollapsesNav(t *testing.T) {
	_, router := newTestApp(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "sidebar", Value: "collapsed"})
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `class="nav-text" style="display: none"`) {
		t.Error("Expected nav labels hidden for collapsed cookie")
	}
}

func TestHandleExportJSON(t *testing.T) {
	_, router := newTestApp(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/contracts/1/export", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "complyboard-review-1.json") {
		t.Errorf("Unexpected disposition: %q", w.Header().Get("Content-Disposition"))
	}

	var r report.ReviewReport
	if err := json.Unmarshal(w.Body.Bytes(), &r); err != nil {
		t.Fatalf("Failed to decode report: %v", err)
	}
	if r.Contract.ID != "1" {
		t.Errorf("Unexpected contract in report: %q", r.Contract.ID)
	}
	if len(r.Terms) != 40 {
		t.Errorf("Expected 40 terms in report, got %d", len(r.Terms))
	}
}

func TestHandleExportMarkdown(t *testing.T) {
	_, router := newTestApp(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/contracts/1/export?format=markdown", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "# Compliance Review:") {
		t.Error("Expected markdown report header")
	}
}

func TestHandleHealth(t *testing.T) {
	_, router := newTestApp(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode health response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Unexpected health status: %v", body["status"])
	}
	if body["contracts"].(float64) != 20 {
		t.Errorf("Unexpected contract count: %v", body["contracts"])
	}
}
