// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package intake_test

import (
	"testing"

	"github.com/mdhender/rythuvedika/intake"
)

func TestNormalizeMobile(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{"919876543210", "+91-9876543210"},
		{"98765432101234", "+91-9876543210"},
		{"abc", ""},
		{"", ""},
		{"91", ""},
		{"+91 98765 43210", "+91-9876543210"},
		{"(987) 654-3210", "+91-9876543210"},
		{"98765", "+91-98765"},
		{"9191234567890", "+91-9123456789"},
		{"0919876543210", "+91-0919876543"},
	} {
		if got := intake.NormalizeMobile(tc.in); got != tc.want {
			t.Errorf("NormalizeMobile(%q): want %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestNormalizeMobile_Idempotent(t *testing.T) {
	for _, in := range []string{
		"919876543210", "98765432101234", "abc", "+91-9876543210", "9", "91919191919191", "+91-91", "x9y1z2",
	} {
		once := intake.NormalizeMobile(in)
		if twice := intake.NormalizeMobile(once); twice != once {
			t.Errorf("NormalizeMobile(%q): %q then %q", in, once, twice)
		}
		if once != "" && len(once) > intake.MobileLength {
			t.Errorf("NormalizeMobile(%q) = %q: longer than %d", in, once, intake.MobileLength)
		}
	}
}
