// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package model

import (
	"errors"
	"fmt"
)

// Status is the lifecycle state of a complaint.
// Any status may move to any other.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
)

var ErrUnknownStatus = errors.New("unknown status")

// Statuses returns all statuses in display order.
func Statuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusResolved}
}

// ParseStatus accepts the display value ("In Progress") or a
// compact form ("InProgress", "in-progress", "in_progress").
func ParseStatus(s string) (Status, error) {
	switch s {
	case "Pending", "pending":
		return StatusPending, nil
	case "In Progress", "InProgress", "in-progress", "in_progress", "in progress", "inprogress":
		return StatusInProgress, nil
	case "Resolved", "resolved":
		return StatusResolved, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownStatus)
}

// Severity ranks statuses so that sorting groups open work first.
// Unknown values rank below Resolved.
func (s Status) Severity() int {
	switch s {
	case StatusPending:
		return 3
	case StatusInProgress:
		return 2
	case StatusResolved:
		return 1
	}
	return 0
}

func (s Status) Valid() bool {
	return s.Severity() != 0
}

func (s Status) String() string {
	return string(s)
}
