// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package browser_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/mdhender/rythuvedika/web/browser"
)

func cookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == browser.CookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie set", browser.CookieName)
	return nil
}

func TestEnsure_IssuesNewID(t *testing.T) {
	rec := httptest.NewRecorder()
	id := browser.Ensure(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("want uuid, got %q", id)
	}
	c := cookieFrom(t, rec)
	if c.Value != id || !c.HttpOnly || c.Path != "/" {
		t.Errorf("cookie: got %+v", c)
	}
}

func TestEnsure_KeepsExistingID(t *testing.T) {
	id := uuid.NewString()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: browser.CookieName, Value: id})
	rec := httptest.NewRecorder()
	if got := browser.Ensure(rec, r); got != id {
		t.Errorf("want %q, got %q", id, got)
	}
	if c := cookieFrom(t, rec); c.Value != id {
		t.Errorf("refreshed cookie: want %q, got %q", id, c.Value)
	}
}

func TestEnsure_ReplacesGarbage(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: browser.CookieName, Value: "../../etc"})
	if _, ok := browser.FromRequest(r); ok {
		t.Errorf("FromRequest: want !ok for a non-uuid value")
	}
	if got := browser.Ensure(httptest.NewRecorder(), r); got == "../../etc" {
		t.Errorf("Ensure must not accept a non-uuid value")
	}
}

func TestMiddleware(t *testing.T) {
	var seen string
	h := browser.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := browser.ID(r.Context())
		if !ok {
			t.Errorf("no id in context")
		}
		seen = id
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if c := cookieFrom(t, rec); c.Value != seen {
		t.Errorf("context id %q does not match cookie %q", seen, c.Value)
	}
}

func TestClearCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	browser.ClearCookie(rec)
	if c := cookieFrom(t, rec); c.MaxAge >= 0 {
		t.Errorf("want expired cookie, got MaxAge %d", c.MaxAge)
	}
}

func TestClearCookie_ReplacesIssuedCookie(t *testing.T) {
	h := browser.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		browser.ClearCookie(w)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	var n int
	for _, c := range rec.Result().Cookies() {
		if c.Name == browser.CookieName {
			n++
			if c.MaxAge >= 0 || c.Value != "" {
				t.Errorf("want expired empty cookie, got %q MaxAge %d", c.Value, c.MaxAge)
			}
		}
	}
	if n != 1 {
		t.Errorf("want 1 %s cookie, got %d", browser.CookieName, n)
	}
}
