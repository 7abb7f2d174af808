// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mdhender/rythuvedika/intake"
	"github.com/mdhender/rythuvedika/query"
	"github.com/mdhender/rythuvedika/web/browser"
	"github.com/mdhender/rythuvedika/web/templates"
)

// selectorFrom rebuilds the location selector from request values.
// "changed" names the dropdown the user just changed so that the ones
// depending on it are cleared.
func (h *Handlers) selectorFrom(values url.Values) *intake.LocationSelector {
	ls := intake.NewLocationSelector(h.catalog)
	ls.SetDistrict(values.Get("district"))
	switch values.Get("changed") {
	case "district":
	case "mandal":
		ls.SetMandal(values.Get("mandal"))
	default:
		ls.SetMandal(values.Get("mandal"))
		ls.SetVillage(values.Get("village"))
	}
	return ls
}

func selectorData(ls *intake.LocationSelector, errMsg string) templates.LocationSelectorData {
	return templates.LocationSelectorData{
		Districts: ls.Districts(),
		Mandals:   ls.MandalOptions(),
		Villages:  ls.VillageOptions(),
		Selected:  ls.Location(),
		CanSubmit: ls.CanSubmit(),
		Error:     errMsg,
	}
}

// Index is the user view: the location selector until a location is saved,
// then the saved location and the browser's own complaints.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sess, err := h.session(r)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	data := h.layout(templates.ViewUser, "")
	loc, ok := sess.Location()
	if !ok {
		ls := h.selectorFrom(r.URL.Query())
		h.renderPage(w, r, http.StatusOK, data, templates.LocationSelector(selectorData(ls, "")))
		return
	}

	if id, err := strconv.Atoi(r.URL.Query().Get("filed")); err == nil && sess.Submitted(id) {
		data.Flash = fmt.Sprintf("Complaint #%d submitted.", id)
	}
	mine := query.Mine(h.complaints.All(), sess.SubmittedIDs())
	h.renderPage(w, r, http.StatusOK, data, templates.UserHome(templates.UserHomeData{Location: loc, Complaints: mine}))
}

// SaveLocation validates the posted location against the catalog and saves it.
func (h *Handlers) SaveLocation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	sess, err := h.session(r)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	ls := h.selectorFrom(r.PostForm)
	if _, err := ls.Submit(r.Context(), sess); err != nil {
		if errors.Is(err, intake.ErrIncomplete) {
			body := templates.LocationSelector(selectorData(ls, "Please select a district, mandal, and village."))
			h.renderPage(w, r, http.StatusBadRequest, h.layout(templates.ViewUser, ""), body)
			return
		}
		h.serverError(w, r, err)
		return
	}
	logger.Debugf("location: browser %s saved %+v", sess.BrowserID(), ls.Location())
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ClearLocation forgets the saved location. Submitted complaints stay
// attributed to the browser.
func (h *Handlers) ClearLocation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess, err := h.session(r)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if err := sess.ClearLocation(r.Context()); err != nil {
		h.serverError(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ForgetBrowser drops the browser cookie. The next request is issued a new
// id, so the saved location and the complaint list start empty. Nothing
// stored under the old id is deleted.
func (h *Handlers) ForgetBrowser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if id, ok := browser.ID(r.Context()); ok {
		logger.Debugf("browser: forgetting %s", id)
	}
	browser.ClearCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
