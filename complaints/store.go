// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package complaints is the write-through complaint store.
//
// The whole collection and the id counter are rewritten to the key-value
// store after every mutation.
package complaints

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/mdhender/rythuvedika/kv"
	"github.com/mdhender/rythuvedika/model"
	"github.com/sirupsen/logrus"
)

// Persisted keys.
const (
	KeyComplaints = "complaints"
	KeyNextID     = "nextComplaintId"
)

// Store is an ordered, append-only collection of complaints.
type Store struct {
	mu         sync.RWMutex
	kv         kv.Store
	now        func() time.Time
	complaints []model.Complaint
	nextID     int

	seed       []model.Complaint
	seedNextID int
}

// Option configures a Store.
type Option func(s *Store)

// WithClock replaces time.Now for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithSeed replaces the records and counter used when nothing is persisted.
func WithSeed(complaints []model.Complaint, nextID int) Option {
	return func(s *Store) {
		s.seed = complaints
		s.seedNextID = nextID
	}
}

// Open loads the collection and counter, falling back to the seed data
// for whichever key is absent. The counter is raised above the highest
// stored id when it lags behind.
func Open(ctx context.Context, store kv.Store, opts ...Option) (*Store, error) {
	s := &Store{
		kv:         store,
		now:        time.Now,
		seed:       Seed(),
		seedNextID: SeedNextID,
	}
	for _, opt := range opts {
		opt(s)
	}

	found, err := kv.GetOrDefault(ctx, store, KeyComplaints, &s.complaints, slices.Clone(s.seed))
	if err != nil {
		return nil, fmt.Errorf("load complaints: %w", err)
	} else if !found {
		logrus.WithField("component", "complaints").Debugf("complaints: no stored collection, using %d seed records", len(s.seed))
	}
	if _, err := kv.GetOrDefault(ctx, store, KeyNextID, &s.nextID, s.seedNextID); err != nil {
		return nil, fmt.Errorf("load next id: %w", err)
	}
	if s.complaints == nil {
		s.complaints = []model.Complaint{}
	}
	for _, c := range s.complaints {
		if c.ID >= s.nextID {
			logrus.WithField("component", "complaints").Warnf("complaints: stored next id %d is not above #%d, raising it", s.nextID, c.ID)
			s.nextID = c.ID + 1
		}
	}

	return s, nil
}

// AddComplaint assigns the next id, marks the complaint Pending, stamps it
// with the current time, appends it, and persists. The input is not validated.
func (s *Store) AddComplaint(ctx context.Context, in model.ComplaintInput) (model.Complaint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := model.Complaint{
		ID:          s.nextID,
		District:    in.District,
		Mandal:      in.Mandal,
		Village:     in.Village,
		Description: in.Description,
		Name:        in.Name,
		Mobile:      in.Mobile,
		Email:       in.Email,
		Status:      model.StatusPending,
		CreatedAt:   s.now().UTC().Truncate(time.Millisecond),
	}

	// the counter is written first; a failed collection write leaves a
	// gap in the ids instead of an id that can be handed out twice
	if err := s.kv.Put(ctx, KeyNextID, s.nextID+1); err != nil {
		return model.Complaint{}, fmt.Errorf("add complaint: %w", err)
	}
	s.nextID++
	complaints := append(slices.Clip(s.complaints), c)
	if err := s.kv.Put(ctx, KeyComplaints, complaints); err != nil {
		return model.Complaint{}, fmt.Errorf("add complaint: %w", err)
	}
	s.complaints = complaints

	logrus.WithField("component", "complaints").Infof("complaints: added #%d (%s, %s, %s)", c.ID, c.Village, c.Mandal, c.District)
	return c, nil
}

// UpdateStatus replaces the status of the complaint with the given id.
// It does nothing, and writes nothing, when no complaint has that id.
func (s *Store) UpdateStatus(ctx context.Context, id int, status model.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.complaints, func(c model.Complaint) bool { return c.ID == id })
	if i < 0 {
		return nil
	}

	complaints := slices.Clone(s.complaints)
	prev := complaints[i].Status
	complaints[i].Status = status
	if err := s.kv.Put(ctx, KeyComplaints, complaints); err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	s.complaints = complaints

	logrus.WithField("component", "complaints").Infof("complaints: #%d %s -> %s", id, prev, status)
	return nil
}

// All returns a copy of the collection in store order.
func (s *Store) All() []model.Complaint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.complaints)
}

// Get returns the complaint with the given id.
func (s *Store) Get(id int) (model.Complaint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.complaints {
		if c.ID == id {
			return c, true
		}
	}
	return model.Complaint{}, false
}

// NextID returns the id the next complaint will receive.
func (s *Store) NextID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextID
}

// Stats holds store statistics.
type Stats struct {
	Total    int
	ByStatus map[model.Status]int
	NextID   int
}

// Stats returns basic statistics about the store.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Stats{
		Total:    len(s.complaints),
		ByStatus: make(map[model.Status]int),
		NextID:   s.nextID,
	}
	for _, st := range model.Statuses() {
		stats.ByStatus[st] = 0
	}
	for _, c := range s.complaints {
		stats.ByStatus[c.Status]++
	}
	return stats
}
