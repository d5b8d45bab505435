// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package middleware

import (
	"net/http"
	"time"

	"github.com/duongnk/eventide/internal/platform/constants"
	"github.com/duongnk/eventide/internal/platform/ctxutil"
	"github.com/duongnk/eventide/pkg/uuidv7"
)

// LanguageResolver looks up the stored display language for a visitor session.
//
// The concrete implementation is Redis-backed and lives in the language domain;
// the interface keeps this middleware free of storage imports.
type LanguageResolver interface {
	// Language returns the stored display language for visitorID, or the
	// platform default when the visitor has not chosen one.
	Language(request *http.Request, visitorID string) string
}

// VisitorSession assigns every public request an anonymous visitor identity
// and resolves the session's display language.
//
// # Flow
//  1. Read the visitor cookie; mint a fresh UUID if absent.
//  2. Resolve the visitor's stored display language.
//  3. Inject both into the request context.
//
// Handlers read the language from context exactly once at the HTTP boundary
// and pass it onward as an explicit argument. Services never touch session
// state.
func VisitorSession(resolver LanguageResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// ── 1. Visitor Identity ───────────────────────────────────────────
			visitorID := ""
			if cookie, err := request.Cookie(constants.VisitorCookieName); err == nil {
				visitorID = cookie.Value
			}

			if visitorID == "" {
				// Time-ordered IDs keep the Redis session keyspace scan-friendly.
				visitorID = uuidv7.New()
				http.SetCookie(writer, &http.Cookie{
					Name:     constants.VisitorCookieName,
					Value:    visitorID,
					Path:     "/",
					Expires:  time.Now().Add(constants.VisitorSessionTTL),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			// ── 2. Display Language ───────────────────────────────────────────
			language := constants.DefaultLanguage
			if resolver != nil {
				language = resolver.Language(request, visitorID)
			}

			// ── 3. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithVisitorID(request.Context(), visitorID)
			ctx = ctxutil.WithLanguage(ctx, language)

			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}
