// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package kv_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/mdhender/rythuvedika/kv"
)

// Set RYTHUVEDIKA_TEST_REDIS_URL (e.g. redis://localhost:6379/15) to run.
func TestRedisStore(t *testing.T) {
	url := os.Getenv("RYTHUVEDIKA_TEST_REDIS_URL")
	if url == "" {
		t.Skip("RYTHUVEDIKA_TEST_REDIS_URL not set")
	}
	ctx := context.Background()
	s, err := kv.NewRedisStore(ctx, url, "test:"+uuid.NewString()+":")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer s.Close()

	var ids []int
	if found, err := s.Get(ctx, "submittedComplaintIds", &ids); err != nil || found {
		t.Fatalf("get absent: found %v, err %v", found, err)
	}
	if err := s.Put(ctx, "submittedComplaintIds", []int{4}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if found, err := s.Get(ctx, "submittedComplaintIds", &ids); err != nil || !found || len(ids) != 1 || ids[0] != 4 {
		t.Errorf("get: want [4], got %v (found %v, err %v)", ids, found, err)
	}
}
