// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package rythuvedika is a complaint intake and triage tool for Rythu
// Vedika farmer service centres.
package rythuvedika

import (
	"github.com/maloquacious/semver"
)

var (
	version = semver.Version{
		Major: 0,
		Minor: 1,
		Patch: 0,
		Build: semver.Commit(),
	}
)

func Version() semver.Version {
	return version
}
