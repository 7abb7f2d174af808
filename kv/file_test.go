// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package kv_test

import (
	"context"
	"os"
	"testing"

	"github.com/mdhender/rythuvedika/kv"
	"github.com/spf13/afero"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	s, err := kv.NewFileStore(fs, "/data")
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	key := "browser/abc/userLocation"
	if err := s.Put(ctx, key, map[string]string{"district": "Warangal"}); err != nil {
		t.Fatalf("put: %v", err)
	}

	var got map[string]string
	found, err := s.Get(ctx, key, &got)
	if err != nil || !found {
		t.Fatalf("get: found %v, err %v", found, err)
	}
	if got["district"] != "Warangal" {
		t.Errorf("district: want Warangal, got %q", got["district"])
	}

	// keys with separators must not create sub-directories
	entries, err := afero.ReadDir(fs, "/data")
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 || entries[0].IsDir() {
		t.Errorf("want one flat file, got %d entries", len(entries))
	}
	if _, err := fs.Stat("/data/" + entries[0].Name() + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temporary file left behind")
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	for _, backend := range []string{"", kv.BackendSQLite, kv.BackendMemory} {
		s, err := kv.Open(ctx, kv.Config{Backend: backend})
		if err != nil {
			t.Errorf("open %q: %v", backend, err)
			continue
		}
		s.Close()
	}

	s, err := kv.Open(ctx, kv.Config{Backend: kv.BackendFile, Dir: "/x", Fs: afero.NewMemMapFs()})
	if err != nil {
		t.Fatalf("open file: %v", err)
	}
	s.Close()

	if _, err := kv.Open(ctx, kv.Config{Backend: "etcd"}); err == nil {
		t.Errorf("open unknown backend: want error")
	}
}

func TestGetOrDefault(t *testing.T) {
	ctx := context.Background()
	s := kv.NewMemoryStore()

	var n int
	found, err := kv.GetOrDefault(ctx, s, "nextComplaintId", &n, 4)
	if err != nil || found || n != 4 {
		t.Errorf("absent: want 4/not found, got %d/%v (%v)", n, found, err)
	}
	if err := s.Put(ctx, "nextComplaintId", 11); err != nil {
		t.Fatalf("put: %v", err)
	}
	found, err = kv.GetOrDefault(ctx, s, "nextComplaintId", &n, 4)
	if err != nil || !found || n != 11 {
		t.Errorf("present: want 11/found, got %d/%v (%v)", n, found, err)
	}
}
