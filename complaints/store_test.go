// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package complaints_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/mdhender/rythuvedika/complaints"
	"github.com/mdhender/rythuvedika/kv"
	"github.com/mdhender/rythuvedika/model"
)

func newStore(t *testing.T, opts ...complaints.Option) (*complaints.Store, kv.Store) {
	t.Helper()
	backing, err := kv.NewSQLiteStore()
	if err != nil {
		t.Fatalf("kv: %v", err)
	}
	t.Cleanup(func() { backing.Close() })
	s, err := complaints.Open(context.Background(), backing, opts...)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return s, backing
}

func fixedClock(start time.Time) func() time.Time {
	now := start
	return func() time.Time {
		now = now.Add(time.Minute)
		return now
	}
}

func input(desc string) model.ComplaintInput {
	return model.ComplaintInput{
		District:    "Warangal",
		Mandal:      "Geesugonda",
		Village:     "Gorrekunta",
		Description: desc,
		Name:        "Lakshmi",
		Mobile:      "+91-9876543210",
	}
}

func TestOpen_SeedDefaults(t *testing.T) {
	s, _ := newStore(t)
	all := s.All()
	if len(all) != 3 {
		t.Fatalf("seed: want 3 complaints, got %d", len(all))
	}
	for i, c := range all {
		if c.ID != i+1 {
			t.Errorf("seed[%d]: want id %d, got %d", i, i+1, c.ID)
		}
	}
	if got := s.NextID(); got != complaints.SeedNextID {
		t.Errorf("next id: want %d, got %d", complaints.SeedNextID, got)
	}
}

func TestAddComplaint_IDsIncreaseByOne(t *testing.T) {
	s, _ := newStore(t, complaints.WithClock(fixedClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		c, err := s.AddComplaint(ctx, input("dry borewell"))
		if err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
		if want := complaints.SeedNextID + i; c.ID != want {
			t.Errorf("add %d: want id %d, got %d", i, want, c.ID)
		}
		if c.Status != model.StatusPending {
			t.Errorf("add %d: want status Pending, got %q", i, c.Status)
		}
		if c.CreatedAt.IsZero() {
			t.Errorf("add %d: createdAt not set", i)
		}
	}

	all := s.All()
	if len(all) != 8 {
		t.Fatalf("want 8 complaints, got %d", len(all))
	}
	if last := all[len(all)-1]; last.ID != 8 {
		t.Errorf("new complaints must be appended: last id want 8, got %d", last.ID)
	}
}

func TestAddComplaint_CustomSeed(t *testing.T) {
	s, _ := newStore(t, complaints.WithSeed(nil, 100))
	c, err := s.AddComplaint(context.Background(), input("pests"))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if c.ID != 100 {
		t.Errorf("want id 100, got %d", c.ID)
	}
}

func TestAddComplaint_Persists(t *testing.T) {
	ctx := context.Background()
	s, backing := newStore(t)
	added, err := s.AddComplaint(ctx, input("seeds were spoiled"))
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	reopened, err := complaints.Open(ctx, backing)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, ok := reopened.Get(added.ID)
	if !ok {
		t.Fatalf("reopened store is missing #%d", added.ID)
	}
	if !got.CreatedAt.Equal(added.CreatedAt) || got.Description != added.Description {
		t.Errorf("reopened: want %+v, got %+v", added, got)
	}
	if reopened.NextID() != added.ID+1 {
		t.Errorf("reopened next id: want %d, got %d", added.ID+1, reopened.NextID())
	}
}

// failingPut wraps a kv.Store and rejects writes to one key.
type failingPut struct {
	kv.Store
	key string
}

var errWrite = errors.New("disk full")

func (f failingPut) Put(ctx context.Context, key string, value any) error {
	if key == f.key {
		return errWrite
	}
	return f.Store.Put(ctx, key, value)
}

func TestAddComplaint_FailedWriteDoesNotReuseID(t *testing.T) {
	ctx := context.Background()
	_, backing := newStore(t)

	broken, err := complaints.Open(ctx, failingPut{Store: backing, key: complaints.KeyComplaints})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := broken.AddComplaint(ctx, input("lost")); !errors.Is(err, errWrite) {
		t.Fatalf("add: want %v, got %v", errWrite, err)
	}
	if len(broken.All()) != 3 {
		t.Errorf("failed add must not change the collection, got %d", len(broken.All()))
	}

	reopened, err := complaints.Open(ctx, backing)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	c, err := reopened.AddComplaint(ctx, input("kept"))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if c.ID <= complaints.SeedNextID {
		t.Errorf("want an id above %d after the failed add, got %d", complaints.SeedNextID, c.ID)
	}
}

func TestAddComplaint_FailedCounterWriteStoresNothing(t *testing.T) {
	ctx := context.Background()
	_, backing := newStore(t)

	broken, err := complaints.Open(ctx, failingPut{Store: backing, key: complaints.KeyNextID})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := broken.AddComplaint(ctx, input("lost")); !errors.Is(err, errWrite) {
		t.Fatalf("add: want %v, got %v", errWrite, err)
	}
	if got := broken.NextID(); got != complaints.SeedNextID {
		t.Errorf("next id: want %d, got %d", complaints.SeedNextID, got)
	}

	reopened, err := complaints.Open(ctx, backing)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if n := len(reopened.All()); n != 3 {
		t.Errorf("collection must not run ahead of the counter, got %d complaints", n)
	}
}

func TestOpen_RaisesLaggingCounter(t *testing.T) {
	ctx := context.Background()
	_, backing := newStore(t)

	stored := []model.Complaint{
		{ID: 1, Status: model.StatusPending},
		{ID: 9, Status: model.StatusResolved},
		{ID: 4, Status: model.StatusPending},
	}
	if err := backing.Put(ctx, complaints.KeyComplaints, stored); err != nil {
		t.Fatalf("put complaints: %v", err)
	}
	if err := backing.Put(ctx, complaints.KeyNextID, 5); err != nil {
		t.Fatalf("put next id: %v", err)
	}

	s, err := complaints.Open(ctx, backing)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if got := s.NextID(); got != 10 {
		t.Errorf("next id: want 10, got %d", got)
	}
	c, err := s.AddComplaint(ctx, input("after gap"))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if c.ID != 10 {
		t.Errorf("want id 10, got %d", c.ID)
	}
}

func TestUpdateStatus_OnlyStatusChanges(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)
	before := s.All()

	if err := s.UpdateStatus(ctx, 2, model.StatusResolved); err != nil {
		t.Fatalf("update: %v", err)
	}
	after := s.All()
	if len(after) != len(before) {
		t.Fatalf("length changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		want := before[i]
		if want.ID == 2 {
			want.Status = model.StatusResolved
		}
		if !reflect.DeepEqual(after[i], want) {
			t.Errorf("position %d: want %+v, got %+v", i, want, after[i])
		}
	}
}

func TestUpdateStatus_AnyTransition(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)
	for _, st := range []model.Status{model.StatusPending, model.StatusResolved, model.StatusInProgress, model.StatusPending} {
		if err := s.UpdateStatus(ctx, 1, st); err != nil {
			t.Fatalf("update to %q: %v", st, err)
		}
		if c, _ := s.Get(1); c.Status != st {
			t.Errorf("want %q, got %q", st, c.Status)
		}
	}
}

func TestUpdateStatus_UnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	s, backing := newStore(t)
	if _, err := s.AddComplaint(ctx, input("crop insurance")); err != nil {
		t.Fatalf("add: %v", err)
	}

	var before json.RawMessage
	if _, err := backing.Get(ctx, complaints.KeyComplaints, &before); err != nil {
		t.Fatalf("get before: %v", err)
	}
	if err := s.UpdateStatus(ctx, 999, model.StatusResolved); err != nil {
		t.Fatalf("update unknown id: %v", err)
	}
	var after json.RawMessage
	if _, err := backing.Get(ctx, complaints.KeyComplaints, &after); err != nil {
		t.Fatalf("get after: %v", err)
	}
	if !bytes.Equal(before, after) {
		t.Errorf("persisted collection changed:\nbefore %s\nafter  %s", before, after)
	}
}

func TestStats(t *testing.T) {
	s, _ := newStore(t)
	stats := s.Stats()
	if stats.Total != 3 || stats.NextID != 4 {
		t.Errorf("want total 3, next 4; got %+v", stats)
	}
	for _, st := range model.Statuses() {
		if stats.ByStatus[st] != 1 {
			t.Errorf("%s: want 1, got %d", st, stats.ByStatus[st])
		}
	}
}
