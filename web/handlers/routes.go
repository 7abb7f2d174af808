// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package handlers

import (
	"net/http"

	"github.com/mdhender/rythuvedika/web/browser"
)

// Routes returns the application mux. Static files are served from
// staticDir when it is not empty.
func (h *Handlers) Routes(staticDir string) http.Handler {
	mux := http.NewServeMux()

	if staticDir != "" {
		fs := http.FileServer(http.Dir(staticDir))
		mux.Handle("/static/", http.StripPrefix("/static/", fs))
	}

	handle := func(pattern, route string, fn http.HandlerFunc) {
		if h.metrics != nil {
			fn = h.metrics.Instrument(route, fn)
		}
		mux.HandleFunc(pattern, fn)
	}

	handle("/", "index", h.Index)
	handle("/location", "location", h.SaveLocation)
	handle("/location/clear", "location_clear", h.ClearLocation)
	handle("/browser/forget", "browser_forget", h.ForgetBrowser)
	handle("/complaints/new", "complaint_new", h.NewComplaint)
	handle("/admin", "admin", h.Admin)
	handle("/admin/complaints/{id}/status", "admin_status", h.UpdateStatus)
	handle("/api/complaints", "api_complaints", h.APIComplaints)
	handle("/api/my-complaints", "api_my_complaints", h.APIMyComplaints)
	handle("/api/catalog", "api_catalog", h.APICatalog)
	handle("/healthz", "healthz", h.Health)
	if h.metrics != nil {
		mux.Handle("/metrics", h.metrics.Handler())
	}

	return browser.Middleware(mux)
}
