// Copyright (c) 2025 Michael D Henderson. All rights reserved.

//go:generate templ generate

// Package templates renders the user and administrator pages as templ
// components.
package templates

import (
	"net/url"
	"strconv"
	"time"

	"github.com/mdhender/rythuvedika/model"
	"github.com/mdhender/rythuvedika/query"
)

// View names for the header toggle.
const (
	ViewUser  = "user"
	ViewAdmin = "admin"
)

type LayoutData struct {
	Title   string
	View    string
	Version string
	Flash   string
}

// LocationSelectorData drives the three dependent dropdowns.
type LocationSelectorData struct {
	Districts []string
	Mandals   []string // empty until a district is chosen
	Villages  []string // empty until a mandal is chosen
	Selected  model.Location
	CanSubmit bool
	Error     string
}

type UserHomeData struct {
	Location   model.Location
	Complaints []model.Complaint
}

// FormData is the state of the complaint form between requests.
type FormData struct {
	Location    model.Location
	Description string
	Name        string
	Mobile      string
	Email       string
	Missing     []string
	CanSubmit   bool
	Confirming  bool
	Error       string
}

type AdminData struct {
	Districts []string
	Mandals   []string
	Filter    query.Filter
	Sort      query.Sort
	Rows      []model.Complaint
	Total     int // size of the unfiltered collection
}

// params returns the query string that reproduces the current view.
func (d AdminData) params() url.Values {
	q := url.Values{}
	if d.Filter.District != "" {
		q.Set("district", d.Filter.District)
	}
	if d.Filter.Mandal != "" {
		q.Set("mandal", d.Filter.Mandal)
	}
	if d.Filter.Search != "" {
		q.Set("q", d.Filter.Search)
	}
	q.Set("sort", string(d.Sort.Key))
	q.Set("dir", string(d.Sort.Direction))
	return q
}

// returnTo is where a status change sends the browser afterwards.
func (d AdminData) returnTo() string {
	return href("/admin", d.params())
}

func (d AdminData) sortHref(key query.SortKey) string {
	q := d.params()
	q.Set("toggle", string(key))
	return href("/admin", q)
}

func (d AdminData) countLabel() string {
	return strconv.Itoa(len(d.Rows)) + " of " + strconv.Itoa(d.Total) + " complaints"
}

// detail is one term and definition in a <dl>.
type detail struct {
	Label string
	Value string
}

func locationRows(loc model.Location) []detail {
	return []detail{
		{"District:", loc.District},
		{"Mandal:", loc.Mandal},
		{"Village/Location:", loc.Village},
	}
}

// reviewRows lists what the confirmation dialog shows, skipping empty values.
func reviewRows(d FormData) []detail {
	rows := locationRows(d.Location)
	for _, row := range []detail{
		{"Description", d.Description},
		{"Submitted By", d.Name},
		{"Mobile", d.Mobile},
		{"Email", d.Email},
	} {
		if row.Value != "" {
			rows = append(rows, row)
		}
	}
	return rows
}

func pageTitle(title string) string {
	if title == "" {
		return "Rythuvedika Complaints"
	}
	return title + " | Rythuvedika Complaints"
}

func statusClass(s model.Status) string {
	switch s {
	case model.StatusPending:
		return "status-pending"
	case model.StatusInProgress:
		return "status-in-progress"
	case model.StatusResolved:
		return "status-resolved"
	}
	return ""
}

func statusAction(id int) string {
	return "/admin/complaints/" + strconv.Itoa(id) + "/status"
}

func sortArrow(dir query.Direction) string {
	if dir == query.Asc {
		return "▲"
	}
	return "▼"
}

func formatTime(t time.Time) string {
	return t.Local().Format("02 Jan 2006, 15:04")
}

func isoTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func href(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
