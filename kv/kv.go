// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package kv persists whole JSON documents under string keys.
//
// Every Put replaces the stored value for the key. There is no partial
// update and no transaction spanning keys.
package kv

import (
	"context"
)

// Store is a key-value store for JSON documents.
type Store interface {
	// Get decodes the value stored under key into dst.
	// It returns false, nil when the key has never been written.
	Get(ctx context.Context, key string, dst any) (bool, error)
	// Put encodes value and replaces whatever is stored under key.
	Put(ctx context.Context, key string, value any) error
	Close() error
}

// GetOrDefault decodes key into dst, leaving dst untouched when the key is absent.
// It reports whether a stored value was found.
func GetOrDefault[T any](ctx context.Context, s Store, key string, dst *T, def T) (bool, error) {
	found, err := s.Get(ctx, key, dst)
	if err != nil {
		return false, err
	}
	if !found {
		*dst = def
	}
	return found, nil
}
