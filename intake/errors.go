// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package intake

import "errors"

var (
	// ErrIncomplete is returned when a location is submitted before all
	// three levels hold a valid selection.
	ErrIncomplete = errors.New("location incomplete")
	// ErrNotReady is returned when the complaint form is submitted before
	// its required fields are filled.
	ErrNotReady = errors.New("complaint form not ready")
	// ErrNotConfirming is returned when a complaint is confirmed without
	// first being submitted for confirmation.
	ErrNotConfirming = errors.New("complaint not awaiting confirmation")
)
