// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package intake

import (
	"context"
	"fmt"

	"github.com/mdhender/rythuvedika/model"
)

// formFields are the gated inputs. Email is optional and not checked.
type formFields struct {
	Description string `validate:"required"`
	Name        string `validate:"required"`
	Mobile      string `validate:"len=14"`
}

// Form collects a complaint against a fixed location. Submitting moves it
// to a confirming state; only Confirm files the complaint.
type Form struct {
	location   model.Location
	fields     formFields
	email      string
	confirming bool
}

// NewForm starts an empty form for the given (already saved) location.
func NewForm(loc model.Location) *Form {
	return &Form{location: loc}
}

func (f *Form) Location() model.Location { return f.location }
func (f *Form) Description() string      { return f.fields.Description }
func (f *Form) Name() string             { return f.fields.Name }
func (f *Form) Mobile() string           { return f.fields.Mobile }
func (f *Form) Email() string            { return f.email }
func (f *Form) Confirming() bool         { return f.confirming }

func (f *Form) SetDescription(s string) { f.fields.Description = s }
func (f *Form) SetName(s string)        { f.fields.Name = s }
func (f *Form) SetEmail(s string)       { f.email = s }

// SetMobile stores the normalized form of raw.
func (f *Form) SetMobile(raw string) {
	f.fields.Mobile = NormalizeMobile(raw)
}

// CanSubmit reports whether description and name are filled and the
// mobile number is complete.
func (f *Form) CanSubmit() bool {
	return validate.Struct(f.fields) == nil
}

// Missing returns the names of the fields that block submission.
func (f *Form) Missing() []string {
	return missingFields(validate.Struct(f.fields))
}

// Submit asks for confirmation. Nothing is filed yet.
func (f *Form) Submit() error {
	if err := validate.Struct(f.fields); err != nil {
		return fmt.Errorf("%w: missing %v", ErrNotReady, missingFields(err))
	}
	f.confirming = true
	return nil
}

// Edit leaves the confirming state and keeps the entered values.
func (f *Form) Edit() {
	f.confirming = false
}

// Cancel discards every entered value and leaves the confirming state.
func (f *Form) Cancel() {
	f.fields = formFields{}
	f.email = ""
	f.confirming = false
}

// Input merges the entered fields with the location.
func (f *Form) Input() model.ComplaintInput {
	return model.ComplaintInput{
		Description: f.fields.Description,
		Name:        f.fields.Name,
		Mobile:      f.fields.Mobile,
		Email:       f.email,
	}.WithLocation(f.location)
}

// ComplaintAdder files complaints, normally a complaints.Store.
type ComplaintAdder interface {
	AddComplaint(ctx context.Context, in model.ComplaintInput) (model.Complaint, error)
}

// SubmissionRecorder attributes a complaint to a browser, normally a session.Session.
type SubmissionRecorder interface {
	RecordSubmission(ctx context.Context, id int) error
}

// Confirm files the complaint, records its id against the submitter, and
// clears the form. The form must be confirming.
func (f *Form) Confirm(ctx context.Context, store ComplaintAdder, submitter SubmissionRecorder) (model.Complaint, error) {
	if !f.confirming {
		return model.Complaint{}, ErrNotConfirming
	}
	if err := validate.Struct(f.fields); err != nil {
		return model.Complaint{}, fmt.Errorf("%w: missing %v", ErrNotReady, missingFields(err))
	}
	c, err := store.AddComplaint(ctx, f.Input())
	if err != nil {
		return model.Complaint{}, err
	}
	if err := submitter.RecordSubmission(ctx, c.ID); err != nil {
		return c, err
	}
	f.Cancel()
	return c, nil
}
