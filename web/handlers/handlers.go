// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/mdhender/rythuvedika"
	"github.com/mdhender/rythuvedika/catalog"
	"github.com/mdhender/rythuvedika/complaints"
	"github.com/mdhender/rythuvedika/session"
	"github.com/mdhender/rythuvedika/web/browser"
	"github.com/mdhender/rythuvedika/web/metrics"
	"github.com/mdhender/rythuvedika/web/templates"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("component", "handlers")

// Handlers holds dependencies for HTTP handlers.
type Handlers struct {
	catalog    *catalog.Catalog
	complaints *complaints.Store
	sessions   *session.Manager
	metrics    *metrics.Metrics
	started    time.Time
}

// New creates a new Handlers. A nil metrics disables instrumentation.
func New(c *catalog.Catalog, store *complaints.Store, sessions *session.Manager, m *metrics.Metrics) *Handlers {
	return &Handlers{
		catalog:    c,
		complaints: store,
		sessions:   sessions,
		metrics:    m,
		started:    time.Now(),
	}
}

// session opens the state of the browser that sent the request.
// Routes must be wrapped by browser.Middleware.
func (h *Handlers) session(r *http.Request) (*session.Session, error) {
	id, _ := browser.ID(r.Context())
	return h.sessions.Open(r.Context(), id)
}

func (h *Handlers) layout(view, title string) templates.LayoutData {
	return templates.LayoutData{
		Title:   title,
		View:    view,
		Version: rythuvedika.Version().Core(),
	}
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

func renderHTML(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		logger.Errorf("render %s: %v", r.URL.Path, err)
	}
}

func (h *Handlers) renderPage(w http.ResponseWriter, r *http.Request, status int, data templates.LayoutData, body templ.Component) {
	renderHTML(w, r, status, templates.Layout(data, body))
}

func (h *Handlers) serverError(w http.ResponseWriter, r *http.Request, err error) {
	logger.Errorf("%s %s: %v", r.Method, r.URL.Path, err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf("json: %v", err)
	}
}

type healthResponse struct {
	Status     string `json:"status"`
	Version    string `json:"version"`
	Uptime     string `json:"uptime"`
	Complaints int    `json:"complaints"`
	NextID     int    `json:"nextId"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	stats := h.complaints.Stats()
	writeJSON(w, http.StatusOK, healthResponse{
		Status:     "ok",
		Version:    rythuvedika.Version().Core(),
		Uptime:     time.Since(h.started).Round(time.Second).String(),
		Complaints: stats.Total,
		NextID:     stats.NextID,
	})
}
