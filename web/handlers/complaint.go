// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mdhender/rythuvedika/intake"
	"github.com/mdhender/rythuvedika/web/templates"
)

func formData(f *intake.Form, errMsg string) templates.FormData {
	return templates.FormData{
		Location:    f.Location(),
		Description: f.Description(),
		Name:        f.Name(),
		Mobile:      f.Mobile(),
		Email:       f.Email(),
		Missing:     f.Missing(),
		CanSubmit:   f.CanSubmit(),
		Confirming:  f.Confirming(),
		Error:       errMsg,
	}
}

// NewComplaint runs the complaint form. The form state travels with each
// post; action selects the step:
//
//	submit  - gate the fields and show the confirmation dialog
//	edit    - back from the dialog to the form, values kept
//	confirm - file the complaint and return to the user view
//	cancel  - discard the values, from the form or from the dialog
func (h *Handlers) NewComplaint(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sess, err := h.session(r)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	loc, ok := sess.Location()
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := h.layout(templates.ViewUser, "New complaint")
	f := intake.NewForm(loc)
	if r.Method == http.MethodGet {
		h.renderPage(w, r, http.StatusOK, data, templates.ComplaintForm(formData(f, "")))
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	f.SetDescription(r.PostForm.Get("description"))
	f.SetName(r.PostForm.Get("name"))
	f.SetMobile(r.PostForm.Get("mobile"))
	f.SetEmail(r.PostForm.Get("email"))

	switch action := r.PostForm.Get("action"); action {
	case "submit", "":
		if err := f.Submit(); err != nil {
			h.renderPage(w, r, http.StatusBadRequest, data, templates.ComplaintForm(formData(f, "Please fill in all required fields.")))
			return
		}
		h.renderPage(w, r, http.StatusOK, data, templates.ComplaintForm(formData(f, "")))
	case "edit":
		f.Edit()
		h.renderPage(w, r, http.StatusOK, data, templates.ComplaintForm(formData(f, "")))
	case "confirm":
		// the dialog posts the reviewed values back; gate them again
		if err := f.Submit(); err != nil {
			h.renderPage(w, r, http.StatusBadRequest, data, templates.ComplaintForm(formData(f, "Please fill in all required fields.")))
			return
		}
		c, err := f.Confirm(r.Context(), h.complaints, sess)
		if err != nil {
			if errors.Is(err, intake.ErrNotReady) || errors.Is(err, intake.ErrNotConfirming) {
				h.renderPage(w, r, http.StatusBadRequest, data, templates.ComplaintForm(formData(f, err.Error())))
				return
			}
			h.serverError(w, r, err)
			return
		}
		if h.metrics != nil {
			h.metrics.ComplaintsSubmitted.Inc()
		}
		http.Redirect(w, r, fmt.Sprintf("/?filed=%d", c.ID), http.StatusSeeOther)
	case "cancel":
		// nothing is stored until confirm, so dropping the form is enough
		f.Cancel()
		http.Redirect(w, r, "/", http.StatusSeeOther)
	default:
		http.Error(w, fmt.Sprintf("unknown action %q", action), http.StatusBadRequest)
	}
}
