// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

// Package sanitize provides HTML sanitization for admin-entered content.
//
// # Why
//
// Post bodies and event descriptions are written in the dashboard's rich-text
// editor and later rendered on the public site. Everything is stripped down to
// a safe formatting subset (no scripts, no event handlers, no javascript: URLs)
// before it reaches the database.
package sanitize

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// policy is the shared bluemonday policy for sanitizing content HTML.
// Initialized once via sync.Once for thread-safe lazy initialization.
var (
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

// getPolicy returns the shared sanitization policy, initializing it on first call.
func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.UGCPolicy()

		// The dashboard editor emits class attributes for alignment and
		// code blocks; keep them.
		policy.AllowAttrs("class").Globally()
	})
	return policy
}

// HTML sanitizes admin-entered HTML, stripping dangerous elements while
// preserving safe formatting tags.
//
// Must be called before storing any rich-text field.
func HTML(input string) string {
	return getPolicy().Sanitize(input)
}
