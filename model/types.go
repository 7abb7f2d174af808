// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package model

import (
	"time"
)

// Location is a district/mandal/village triple.
type Location struct {
	District string `json:"district"`
	Mandal   string `json:"mandal"`
	Village  string `json:"village"`
}

// ComplaintInput is the data a citizen supplies for a new complaint.
// The store assigns the id, status, and creation time.
type ComplaintInput struct {
	District    string `json:"district"`
	Mandal      string `json:"mandal"`
	Village     string `json:"village"`
	Description string `json:"description"`
	Name        string `json:"name"`
	Mobile      string `json:"mobile"`          // "+91-XXXXXXXXXX", not enforced by the store
	Email       string `json:"email,omitempty"` // optional
}

// Complaint is a filed complaint. Only Status changes after creation.
type Complaint struct {
	ID          int       `json:"id"`
	District    string    `json:"district"`
	Mandal      string    `json:"mandal"`
	Village     string    `json:"village"`
	Description string    `json:"description"`
	Name        string    `json:"name"`
	Mobile      string    `json:"mobile"`
	Email       string    `json:"email"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Location returns the location the complaint was filed against.
func (c Complaint) Location() Location {
	return Location{District: c.District, Mandal: c.Mandal, Village: c.Village}
}

// WithLocation returns a copy of the input with the location fields replaced.
func (in ComplaintInput) WithLocation(loc Location) ComplaintInput {
	in.District, in.Mandal, in.Village = loc.District, loc.Mandal, loc.Village
	return in
}
