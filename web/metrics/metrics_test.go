// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mdhender/rythuvedika/model"
	"github.com/mdhender/rythuvedika/web/metrics"
)

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("scrape: want 200, got %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	return string(body)
}

func TestMetrics_Counters(t *testing.T) {
	m := metrics.New(func() map[model.Status]int {
		return map[model.Status]int{model.StatusPending: 2, model.StatusResolved: 1}
	})
	m.ComplaintsSubmitted.Inc()
	m.StatusChanged(model.StatusInProgress)
	m.StatusChanged(model.StatusInProgress)

	body := scrape(t, m)
	for _, want := range []string{
		"rythuvedika_complaints_submitted_total 1",
		`rythuvedika_status_changes_total{status="In Progress"} 2`,
		`rythuvedika_complaints{status="Pending"} 2`,
		`rythuvedika_complaints{status="In Progress"} 0`,
		`rythuvedika_complaints{status="Resolved"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("scrape: missing %q", want)
		}
	}
}

func TestMetrics_Instrument(t *testing.T) {
	m := metrics.New(nil)
	h := m.Instrument("admin", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("fail") != "" {
			http.Error(w, "nope", http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte("ok"))
	})
	for _, target := range []string{"/admin", "/admin", "/admin?fail=1"} {
		h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	body := scrape(t, m)
	for _, want := range []string{
		`rythuvedika_http_requests_total{code="200",route="admin"} 2`,
		`rythuvedika_http_requests_total{code="400",route="admin"} 1`,
		`rythuvedika_http_request_duration_seconds_count{route="admin"} 3`,
		"rythuvedika_http_requests_in_flight 0",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("scrape: missing %q", want)
		}
	}
}

func TestMetrics_SeparateRegistries(t *testing.T) {
	a, b := metrics.New(nil), metrics.New(nil)
	a.ComplaintsSubmitted.Inc()
	if body := scrape(t, b); !strings.Contains(body, "rythuvedika_complaints_submitted_total 0") {
		t.Errorf("registries must be independent")
	}
}
