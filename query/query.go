// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package query derives the admin and own-complaint views from the raw
// complaint collection. Nothing is cached; every call recomputes.
package query

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/mdhender/rythuvedika/model"
)

// Filter selects complaints. Empty fields match everything.
type Filter struct {
	District string
	Mandal   string
	Search   string
}

// Match reports whether c passes all three conditions.
// Search is case-insensitive against description and name, and literal
// against mobile.
func (f Filter) Match(c model.Complaint) bool {
	if f.District != "" && c.District != f.District {
		return false
	}
	if f.Mandal != "" && c.Mandal != f.Mandal {
		return false
	}
	if f.Search == "" {
		return true
	}
	q := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(c.Description), q) ||
		strings.Contains(strings.ToLower(c.Name), q) ||
		strings.Contains(c.Mobile, f.Search)
}

type SortKey string

const (
	SortByID        SortKey = "id"
	SortByCreatedAt SortKey = "createdAt"
	SortByStatus    SortKey = "status"
)

func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortByID, SortByCreatedAt, SortByStatus:
		return SortKey(s), nil
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Asc, Desc:
		return Direction(s), nil
	}
	return "", fmt.Errorf("unknown sort direction %q", s)
}

// Sort is a single active key and its direction.
type Sort struct {
	Key       SortKey
	Direction Direction
}

// compare orders two complaints by the sort key, ascending.
func (s Sort) compare(a, b model.Complaint) int {
	switch s.Key {
	case SortByID:
		return cmp.Compare(a.ID, b.ID)
	case SortByCreatedAt:
		return a.CreatedAt.Compare(b.CreatedAt)
	case SortByStatus:
		return cmp.Compare(a.Status.Severity(), b.Status.Severity())
	}
	return 0
}

// Apply filters and then stable-sorts a copy of complaints.
func Apply(complaints []model.Complaint, f Filter, s Sort) []model.Complaint {
	out := make([]model.Complaint, 0, len(complaints))
	for _, c := range complaints {
		if f.Match(c) {
			out = append(out, c)
		}
	}
	slices.SortStableFunc(out, func(a, b model.Complaint) int {
		if s.Direction == Asc {
			return s.compare(a, b)
		}
		return s.compare(b, a)
	})
	return out
}

// Mine returns the complaints whose ids are in ids, most recent first.
func Mine(complaints []model.Complaint, ids []int) []model.Complaint {
	var out []model.Complaint
	for _, c := range complaints {
		if slices.Contains(ids, c.ID) {
			out = append(out, c)
		}
	}
	slices.SortStableFunc(out, func(a, b model.Complaint) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out
}
