// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package browser identifies the browser behind a request with a
// long-lived cookie. There are no accounts; the id only scopes the saved
// location and the list of submitted complaints.
package browser

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const CookieName = "rythuvedika_browser"

// Lifetime is how long the cookie lives without a visit.
const Lifetime = 365 * 24 * time.Hour

type ctxKey struct{}

// FromRequest returns the id from the cookie, if the cookie holds a valid id.
func FromRequest(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", false
	}
	id, err := uuid.Parse(cookie.Value)
	if err != nil {
		return "", false
	}
	return id.String(), true
}

// Ensure returns the id for the request, issuing a new cookie when the
// request carries none. The cookie expiry is refreshed on every call.
func Ensure(w http.ResponseWriter, r *http.Request) string {
	id, ok := FromRequest(r)
	if !ok {
		id = uuid.NewString()
	}
	SetCookie(w, id)
	return id
}

func SetCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(Lifetime),
		MaxAge:   int(Lifetime / time.Second),
	})
}

// ClearCookie forgets the browser. Its stored data is left in place.
// A cookie already queued by Ensure for this response is dropped so the
// expiry is the only one the browser sees.
func ClearCookie(w http.ResponseWriter) {
	h := w.Header()
	var keep []string
	for _, v := range h.Values("Set-Cookie") {
		if !strings.HasPrefix(v, CookieName+"=") {
			keep = append(keep, v)
		}
	}
	h.Del("Set-Cookie")
	for _, v := range keep {
		h.Add("Set-Cookie", v)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// Middleware makes sure every request has a browser id and stores it
// in the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := Ensure(w, r)
		next.ServeHTTP(w, r.WithContext(withID(r.Context(), id)))
	})
}

func withID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// ID returns the id stored by Middleware.
func ID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}
