// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package model_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mdhender/rythuvedika/model"
)

func TestParseStatus(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want model.Status
	}{
		{"Pending", model.StatusPending},
		{"In Progress", model.StatusInProgress},
		{"in-progress", model.StatusInProgress},
		{"resolved", model.StatusResolved},
	} {
		got, err := model.ParseStatus(tc.in)
		if err != nil {
			t.Errorf("ParseStatus(%q): unexpected error %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseStatus(%q): want %q, got %q", tc.in, tc.want, got)
		}
	}

	if _, err := model.ParseStatus("Closed"); !errors.Is(err, model.ErrUnknownStatus) {
		t.Errorf("ParseStatus(Closed): want ErrUnknownStatus, got %v", err)
	}
}

func TestSeverity(t *testing.T) {
	if !(model.StatusPending.Severity() > model.StatusInProgress.Severity() &&
		model.StatusInProgress.Severity() > model.StatusResolved.Severity()) {
		t.Errorf("severity must rank Pending > In Progress > Resolved")
	}
	if model.Status("Closed").Valid() {
		t.Errorf("unknown status must not be valid")
	}
}

func TestComplaintJSONFieldNames(t *testing.T) {
	c := model.Complaint{
		ID:        7,
		District:  "Warangal",
		Status:    model.StatusInProgress,
		CreatedAt: time.Date(2023, 10, 22, 14, 30, 0, 0, time.UTC),
	}
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, want := range []string{`"id":7`, `"district":"Warangal"`, `"status":"In Progress"`, `"createdAt":"2023-10-22T14:30:00Z"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("json %s: missing %s", data, want)
		}
	}
}
