// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package handlers

import (
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/mdhender/rythuvedika/model"
	"github.com/mdhender/rythuvedika/query"
	"github.com/mdhender/rythuvedika/web/templates"
)

// adminFrom rebuilds the dashboard state from query parameters.
//
//	district, mandal, q  filters
//	sort, dir            the active sort; bad values fall back to the default
//	changed=district     the district was just changed, so the mandal is dropped
//	toggle=<key>         a column header was clicked
func (h *Handlers) adminFrom(values url.Values) *query.Admin {
	a := query.NewAdmin(h.catalog)

	if key, err := query.ParseSortKey(values.Get("sort")); err == nil {
		dir, err := query.ParseDirection(values.Get("dir"))
		if err != nil {
			dir = query.Desc
		}
		a.SetSort(query.Sort{Key: key, Direction: dir})
	}

	a.SetDistrict(values.Get("district"))
	if values.Get("changed") != "district" {
		if mandal := values.Get("mandal"); slices.Contains(a.MandalOptions(), mandal) {
			a.SetMandal(mandal)
		}
	}
	a.SetSearch(strings.TrimSpace(values.Get("q")))

	if key, err := query.ParseSortKey(values.Get("toggle")); err == nil {
		a.ToggleSort(key)
	}
	return a
}

func (h *Handlers) adminData(a *query.Admin) templates.AdminData {
	all := h.complaints.All()
	return templates.AdminData{
		Districts: a.Districts(),
		Mandals:   a.MandalOptions(),
		Filter:    a.Filter(),
		Sort:      a.Sort(),
		Rows:      a.Apply(all),
		Total:     len(all),
	}
}

// Admin renders the dashboard. htmx requests get the table alone, except
// when they target the whole dashboard.
func (h *Handlers) Admin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	d := h.adminData(h.adminFrom(r.URL.Query()))

	if isHTMX(r) {
		if r.Header.Get("HX-Target") == "dashboard" {
			renderHTML(w, r, http.StatusOK, templates.AdminPage(d))
			return
		}
		renderHTML(w, r, http.StatusOK, templates.AdminTable(d))
		return
	}

	h.renderPage(w, r, http.StatusOK, h.layout(templates.ViewAdmin, "Admin"), templates.AdminPage(d))
}

// UpdateStatus sets the status of one complaint. Any status may follow any
// other.
func (h *Handlers) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid complaint id", http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	status, err := model.ParseStatus(r.PostForm.Get("status"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if _, ok := h.complaints.Get(id); !ok {
		http.NotFound(w, r)
		return
	}

	if err := h.complaints.UpdateStatus(r.Context(), id, status); err != nil {
		h.serverError(w, r, err)
		return
	}
	if h.metrics != nil {
		h.metrics.StatusChanged(status)
	}

	http.Redirect(w, r, adminReturn(r.PostForm.Get("return")), http.StatusSeeOther)
}

// adminReturn only allows redirects back into the dashboard.
func adminReturn(target string) string {
	u, err := url.Parse(target)
	if err != nil || u.IsAbs() || u.Host != "" || u.Path != "/admin" {
		return "/admin"
	}
	return u.RequestURI()
}
