// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package intake

import "strings"

// MobileLength is the length of a complete normalized number, "+91-" plus ten digits.
const MobileLength = 14

// NormalizeMobile reduces raw input to "+91-" followed by at most ten digits.
// Non-digits are dropped, then one leading "91" country code, then anything
// past ten digits. Input with no digits normalizes to "".
func NormalizeMobile(raw string) string {
	var sb strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	digits := strings.TrimPrefix(sb.String(), "91")
	if len(digits) > 10 {
		digits = digits[:10]
	}
	if digits == "" {
		return ""
	}
	return "+91-" + digits
}
