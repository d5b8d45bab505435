// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package language

import "context"

/*
SessionRepository persists the language preference of an anonymous visitor.

Parameters:
  - visitorID: the opaque identity minted by the visitor session middleware.

Returns:
  - Get returns an empty string, not an error, when the visitor has no
    stored preference.
*/
type SessionRepository interface {
	Get(context context.Context, visitorID string) (string, error)
	Set(context context.Context, visitorID string, code string) error
}
