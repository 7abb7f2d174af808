// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package kv_test

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mdhender/rythuvedika/kv"
)

type doc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := kv.NewSQLiteStore()
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	defer s.Close()

	var got doc
	found, err := s.Get(ctx, "missing", &got)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if found {
		t.Errorf("get missing: want not found")
	}

	if err := s.Put(ctx, "a", doc{Name: "first", Count: 1}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Put(ctx, "a", doc{Name: "second", Count: 2}); err != nil {
		t.Fatalf("put overwrite: %v", err)
	}
	found, err = s.Get(ctx, "a", &got)
	if err != nil || !found {
		t.Fatalf("get: found %v, err %v", found, err)
	}
	if got != (doc{Name: "second", Count: 2}) {
		t.Errorf("get: want second/2, got %+v", got)
	}
}

func TestSQLiteStore_IsolatedInMemory(t *testing.T) {
	ctx := context.Background()
	a, err := kv.NewSQLiteStore()
	if err != nil {
		t.Fatalf("new store a: %v", err)
	}
	defer a.Close()
	b, err := kv.NewSQLiteStore()
	if err != nil {
		t.Fatalf("new store b: %v", err)
	}
	defer b.Close()

	if err := a.Put(ctx, "k", 1); err != nil {
		t.Fatalf("put: %v", err)
	}
	var n int
	if found, _ := b.Get(ctx, "k", &n); found {
		t.Errorf("in-memory stores must not share data")
	}
}

func TestSQLiteStore_DecodeError(t *testing.T) {
	ctx := context.Background()
	s, err := kv.NewSQLiteStore()
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	defer s.Close()

	if err := s.Put(ctx, "n", "not a number"); err != nil {
		t.Fatalf("put: %v", err)
	}
	var n int
	_, err = s.Get(ctx, "n", &n)
	var de *kv.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("want DecodeError, got %v", err)
	}
	if de.Key != "n" {
		t.Errorf("DecodeError.Key: want %q, got %q", "n", de.Key)
	}
}

func TestSQLiteFile_InitReopenCompact(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "rythuvedika.db")

	if _, err := kv.NewSQLStoreWithConfig(kv.StoreConfig{Path: path}); err == nil {
		t.Fatalf("open before init-db: want error")
	}
	if err := kv.InitDatabase(path); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := kv.InitDatabase(path); err == nil {
		t.Errorf("second init: want error for existing file")
	}

	s, err := kv.NewSQLStoreWithConfig(kv.StoreConfig{Path: path})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Put(ctx, "nextComplaintId", 9); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	if err := kv.CompactDatabase(path); err != nil {
		t.Fatalf("compact: %v", err)
	}

	s, err = kv.NewSQLStoreWithConfig(kv.StoreConfig{Path: path})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	var n int
	if found, err := s.Get(ctx, "nextComplaintId", &n); err != nil || !found || n != 9 {
		t.Errorf("reopen get: want 9, got %d (found %v, err %v)", n, found, err)
	}
}

func TestSQLStore_MySQLDialect(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	s := kv.NewSQLStore(db, kv.DialectMySQL)

	mock.ExpectExec(`INSERT INTO kv \(name, value, updated_at\) VALUES \(\?, \?, \?\)\s+ON DUPLICATE KEY UPDATE value = VALUES\(value\)`).
		WithArgs("submitted", "[4,5]", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	if err := s.Put(ctx, "submitted", []int{4, 5}); err != nil {
		t.Fatalf("put: %v", err)
	}

	mock.ExpectQuery(`SELECT value FROM kv WHERE name = \?`).
		WithArgs("submitted").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("[4,5]"))
	var ids []int
	found, err := s.Get(ctx, "submitted", &ids)
	if err != nil || !found {
		t.Fatalf("get: found %v, err %v", found, err)
	}
	if len(ids) != 2 || ids[0] != 4 || ids[1] != 5 {
		t.Errorf("get: want [4 5], got %v", ids)
	}

	mock.ExpectQuery(`SELECT value FROM kv WHERE name = \?`).
		WithArgs("absent").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))
	var raw json.RawMessage
	if found, err := s.Get(ctx, "absent", &raw); err != nil || found {
		t.Errorf("get absent: want not found, got found %v, err %v", found, err)
	}

	mock.ExpectExec(`INSERT INTO kv`).WillReturnError(errors.New("connection reset"))
	err = s.Put(ctx, "x", 1)
	var dbe *kv.DatabaseError
	if !errors.As(err, &dbe) || dbe.Op != "put" {
		t.Errorf("put failure: want DatabaseError{Op: put}, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
