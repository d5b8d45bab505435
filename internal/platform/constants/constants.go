// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Security: JWT issuers and cookie configuration.
  - Localization: Supported public display languages.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "eventide-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in JWTs.
	AuthIssuer = "eventide.app"

	// AccessTokenTTL is the lifetime of an admin access token.
	AccessTokenTTL = 8 * time.Hour
)

// # Public Site Localization

const (
	// DefaultLanguage is the display language used when a visitor has not chosen one.
	DefaultLanguage = "en"

	// SecondaryLanguage is the second language of the bilingual public site.
	SecondaryLanguage = "vi"

	// VisitorCookieName identifies the anonymous visitor session.
	VisitorCookieName = "eventide_visitor"

	// VisitorSessionTTL is how long a visitor's language choice is remembered.
	VisitorSessionTTL = 30 * 24 * time.Hour
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderOrigin        = "Origin"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
)

// # JSON Field Identifiers

const (
	FieldError = "error"
	FieldCode  = "code"
)

// # Content Types
//
// Shared discriminator values for categories, media links and search rows.

const (
	ContentTypeEvent = "event"
	ContentTypePost  = "post"
	ContentTypeMedia = "media"
)

// # Search Defaults

const (
	// SearchDefaultPageSize is the number of search rows per page.
	SearchDefaultPageSize = 12

	// AutocompleteLimit caps the number of title suggestions.
	AutocompleteLimit = 8
)

// # Database Schemas

const (
	SchemaContent = "content"
	SchemaStats   = "stats"
	SchemaUsers   = "users"
	SchemaInbox   = "inbox"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixVisitorLang = "visitor:lang:"
)
