package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/leadscope/lead-intel-api/internal/catalog"
	"github.com/leadscope/lead-intel-api/internal/intel"
	"github.com/leadscope/lead-intel-api/internal/logger"
	"github.com/leadscope/lead-intel-api/internal/services"
)

// newTestRouter builds the full route tree on the seeded catalog with a
// fixed clock so recency-dependent responses are stable.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clock := func() time.Time {
		return time.Date(2025, 10, 7, 12, 0, 0, 0, time.UTC)
	}
	engine := intel.NewEngineWithOptions(30, clock)
	svcs := services.NewServices(catalog.New(), engine, logger.New())

	r := gin.New()
	SetupRoutes(r, svcs)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("Response is not valid JSON: %v\n%s", err, w.Body.String())
	}
	return payload
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	payload := decodeJSON(t, w)
	if payload["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", payload["status"])
	}
}

func TestGetLeadsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	t.Run("Returns all leads with a total", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/leads", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}
		payload := decodeJSON(t, w)
		if payload["total"] != float64(10) {
			t.Errorf("Expected total 10, got %v", payload["total"])
		}
		leads, ok := payload["leads"].([]interface{})
		if !ok || len(leads) != 10 {
			t.Fatalf("Expected 10 leads in the body, got %v", payload["leads"])
		}
		first, _ := leads[0].(map[string]interface{})
		if _, ok := first["business_priority_score"]; !ok {
			t.Error("Expected enriched leads in the response")
		}
	})

	t.Run("Query filters narrow the list", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/leads?tech_stack=React&company_size=51-200", nil)
		payload := decodeJSON(t, w)
		if payload["total"] != float64(2) {
			t.Errorf("Expected total 2, got %v", payload["total"])
		}
	})

	t.Run("Malformed query values are ignored", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/leads?min_score=banana", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}
		payload := decodeJSON(t, w)
		if payload["total"] != float64(10) {
			t.Errorf("Expected the full list, got %v", payload["total"])
		}
	})
}

func TestGetLeadEndpoint(t *testing.T) {
	r := newTestRouter(t)

	t.Run("Known id", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/leads/1", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}
		payload := decodeJSON(t, w)
		lead, _ := payload["lead"].(map[string]interface{})
		if lead["company"] != "TechCorp Solutions" {
			t.Errorf("Expected TechCorp Solutions, got %v", lead["company"])
		}
	})

	t.Run("Unknown id returns 404", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/leads/999", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})

	t.Run("Non-numeric id returns 400", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/leads/abc", nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})
}

func TestExportEndpoint(t *testing.T) {
	r := newTestRouter(t)

	t.Run("CSV attachment", func(t *testing.T) {
		body, _ := json.Marshal(map[string]interface{}{"lead_ids": []int{1, 2}})
		w := doRequest(t, r, http.MethodPost, "/api/export", body)
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
			t.Errorf("Expected text/csv, got %q", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "leads_export_") {
			t.Errorf("Expected an attachment filename, got %q", cd)
		}
		lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
		if len(lines) != 3 {
			t.Errorf("Expected header plus 2 rows, got %d lines", len(lines))
		}
	})

	t.Run("Format query overrides the body", func(t *testing.T) {
		body, _ := json.Marshal(map[string]interface{}{"lead_ids": []int{1}, "format": "csv"})
		w := doRequest(t, r, http.MethodPost, "/api/export?format=json", body)
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
			t.Errorf("Expected application/json, got %q", ct)
		}
	})

	t.Run("Invalid format returns 400", func(t *testing.T) {
		body, _ := json.Marshal(map[string]interface{}{"format": "xml"})
		w := doRequest(t, r, http.MethodPost, "/api/export", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})

	t.Run("Malformed body returns 400", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/export", []byte("{not json"))
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})
}

func TestAnalyticsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/analytics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	payload := decodeJSON(t, w)
	if payload["total_leads"] != float64(10) {
		t.Errorf("Expected 10 total leads, got %v", payload["total_leads"])
	}
	techs, _ := payload["top_technologies"].([]interface{})
	if len(techs) != 5 {
		t.Errorf("Expected top 5 technologies, got %d", len(techs))
	}
}

func TestFilterOptionsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/filters/options", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	payload := decodeJSON(t, w)
	sizes, _ := payload["company_sizes"].([]interface{})
	if len(sizes) != 5 {
		t.Errorf("Expected 5 company sizes, got %v", payload["company_sizes"])
	}
}

func TestPriorityLeadsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/business/priority-leads", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	payload := decodeJSON(t, w)
	if payload["total"] != float64(7) {
		t.Errorf("Expected 7 priority leads, got %v", payload["total"])
	}
	if payload["avg_business_score"] != 87.9 {
		t.Errorf("Expected average 87.9, got %v", payload["avg_business_score"])
	}
}

func TestSalesPlaybookEndpoint(t *testing.T) {
	r := newTestRouter(t)

	t.Run("Known lead", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/business/sales-playbook/1", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}
		payload := decodeJSON(t, w)
		if payload["lead_id"] != float64(1) {
			t.Errorf("Expected lead_id 1, got %v", payload["lead_id"])
		}
		playbook, _ := payload["playbook"].(map[string]interface{})
		if _, ok := playbook["outreach_strategy"]; !ok {
			t.Error("Expected an outreach strategy in the playbook")
		}
	})

	t.Run("Unknown lead returns 404", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/business/sales-playbook/999", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})

	t.Run("Bad id returns 400", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/business/sales-playbook/oops", nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})
}

func TestSalesInsightsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/business/sales-insights/7", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	payload := decodeJSON(t, w)
	insights, _ := payload["insights"].(map[string]interface{})
	if insights["competitive_angle"] != "Rapid growth and agility focus" {
		t.Errorf("Unexpected competitive angle %v", insights["competitive_angle"])
	}

	if w := doRequest(t, r, http.MethodGet, "/api/business/sales-insights/999", nil); w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestQualityReportEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/business/quality-report", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	payload := decodeJSON(t, w)
	dist, _ := payload["quality_distribution"].(map[string]interface{})
	if len(dist) != 3 {
		t.Errorf("Expected three distribution buckets, got %v", dist)
	}
}

func TestIndustryInsightsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/business/industry-insights", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	payload := decodeJSON(t, w)
	top, _ := payload["top_industries"].([]interface{})
	if len(top) != 5 {
		t.Errorf("Expected top 5 industries, got %d", len(top))
	}
}

func TestWorkflowStagesEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/business/workflow-stages", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	payload := decodeJSON(t, w)
	stages, _ := payload["stages"].([]interface{})
	if len(stages) != 5 {
		t.Errorf("Expected 5 workflow stages, got %d", len(stages))
	}
}
