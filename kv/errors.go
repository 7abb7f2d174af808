// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package kv

import "fmt"

// DatabaseError is returned when the backing store fails.
type DatabaseError struct {
	Op  string // get, put, open, schema
	Key string
	Err error
}

func (e *DatabaseError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("kv %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("kv %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a stored value can't be decoded into the
// caller's type.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("kv decode %q: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
