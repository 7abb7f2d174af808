// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package session keeps the state attributed to one browser: its saved
// location and the ids of the complaints it has submitted.
package session

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/mdhender/rythuvedika/kv"
	"github.com/mdhender/rythuvedika/model"
)

// Per-browser keys, stored under "browser/<id>/".
const (
	KeyUserLocation = "userLocation"
	KeySubmittedIDs = "submittedComplaintIds"
)

// Manager hands out sessions and serializes mutations per browser.
type Manager struct {
	kv kv.Store

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewManager(store kv.Store) *Manager {
	return &Manager{kv: store, locks: make(map[string]*sync.Mutex)}
}

// Session is a snapshot of one browser's state plus the operations that
// change it. Mutations write through immediately.
type Session struct {
	kv        kv.Store
	lock      *sync.Mutex
	browserID string
	location  *model.Location
	submitted []int
}

// Open loads the session for a browser. Absent keys yield no location and
// an empty submission list.
func (m *Manager) Open(ctx context.Context, browserID string) (*Session, error) {
	if browserID == "" {
		return nil, fmt.Errorf("session: empty browser id")
	}
	s := &Session{kv: m.kv, lock: m.lockFor(browserID), browserID: browserID}

	s.lock.Lock()
	defer s.lock.Unlock()

	var loc *model.Location
	if _, err := m.kv.Get(ctx, s.key(KeyUserLocation), &loc); err != nil {
		return nil, fmt.Errorf("session: load location: %w", err)
	}
	s.location = loc
	if _, err := kv.GetOrDefault(ctx, m.kv, s.key(KeySubmittedIDs), &s.submitted, []int{}); err != nil {
		return nil, fmt.Errorf("session: load submitted ids: %w", err)
	}
	if s.submitted == nil {
		s.submitted = []int{}
	}
	return s, nil
}

func (m *Manager) lockFor(browserID string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.locks[browserID]
	if !ok {
		l = &sync.Mutex{}
		m.locks[browserID] = l
	}
	return l
}

func (s *Session) BrowserID() string {
	return s.browserID
}

// Location returns the saved location, if any.
func (s *Session) Location() (model.Location, bool) {
	if s.location == nil {
		return model.Location{}, false
	}
	return *s.location, true
}

// SaveLocation replaces the saved location.
func (s *Session) SaveLocation(ctx context.Context, loc model.Location) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if err := s.kv.Put(ctx, s.key(KeyUserLocation), &loc); err != nil {
		return fmt.Errorf("session: save location: %w", err)
	}
	s.location = &loc
	return nil
}

// ClearLocation forgets the saved location. Submitted ids are kept.
func (s *Session) ClearLocation(ctx context.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	var none *model.Location
	if err := s.kv.Put(ctx, s.key(KeyUserLocation), none); err != nil {
		return fmt.Errorf("session: clear location: %w", err)
	}
	s.location = nil
	return nil
}

// RecordSubmission attributes a complaint id to this browser.
// The list only grows; an id already present is not added twice.
func (s *Session) RecordSubmission(ctx context.Context, id int) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	// another request for the same browser may have written since Open
	if _, err := kv.GetOrDefault(ctx, s.kv, s.key(KeySubmittedIDs), &s.submitted, []int{}); err != nil {
		return fmt.Errorf("session: record submission: %w", err)
	}
	if slices.Contains(s.submitted, id) {
		return nil
	}
	submitted := append(slices.Clip(s.submitted), id)
	if err := s.kv.Put(ctx, s.key(KeySubmittedIDs), submitted); err != nil {
		return fmt.Errorf("session: record submission: %w", err)
	}
	s.submitted = submitted
	return nil
}

// SubmittedIDs returns the submitted ids in submission order.
func (s *Session) SubmittedIDs() []int {
	return slices.Clone(s.submitted)
}

func (s *Session) Submitted(id int) bool {
	return slices.Contains(s.submitted, id)
}

func (s *Session) key(name string) string {
	return "browser/" + s.browserID + "/" + name
}
