// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package handlers

import (
	"net/http"

	"github.com/mdhender/rythuvedika/model"
	"github.com/mdhender/rythuvedika/query"
)

type complaintsResponse struct {
	Total      int               `json:"total"`
	Count      int               `json:"count"`
	District   string            `json:"district,omitempty"`
	Mandal     string            `json:"mandal,omitempty"`
	Search     string            `json:"q,omitempty"`
	Sort       query.SortKey     `json:"sort"`
	Direction  query.Direction   `json:"dir"`
	Complaints []model.Complaint `json:"complaints"`
}

// APIComplaints answers the dashboard query as JSON. It takes the same
// parameters as the dashboard.
func (h *Handlers) APIComplaints(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	d := h.adminData(h.adminFrom(r.URL.Query()))
	rows := d.Rows
	if rows == nil {
		rows = []model.Complaint{}
	}
	writeJSON(w, http.StatusOK, complaintsResponse{
		Total:      d.Total,
		Count:      len(rows),
		District:   d.Filter.District,
		Mandal:     d.Filter.Mandal,
		Search:     d.Filter.Search,
		Sort:       d.Sort.Key,
		Direction:  d.Sort.Direction,
		Complaints: rows,
	})
}

// APIMyComplaints returns the requesting browser's complaints, newest first.
func (h *Handlers) APIMyComplaints(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess, err := h.session(r)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	mine := query.Mine(h.complaints.All(), sess.SubmittedIDs())
	if mine == nil {
		mine = []model.Complaint{}
	}
	writeJSON(w, http.StatusOK, mine)
}

func (h *Handlers) APICatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, h.catalog.Tree())
}
