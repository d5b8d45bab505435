// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package language

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/duongnk/eventide/internal/platform/constants"
)

// RedisSessionRepository implements SessionRepository using Redis.
type RedisSessionRepository struct {
	client *redis.Client
}

// NewRedisSessionRepository creates a new Redis-backed SessionRepository.
func NewRedisSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

/*
Get retrieves the stored language code for a visitor.

Parameters:
  - context: context.Context
  - visitorID: string

Returns:
  - string: Stored language code, empty when no preference exists
  - error: Connectivity errors
*/
func (repository *RedisSessionRepository) Get(context context.Context, visitorID string) (string, error) {

	// Use constants for key prefix
	key := constants.RedisPrefixVisitorLang + visitorID

	// Fetch the stored preference
	code, err := repository.client.Get(context, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("redis_visitor_lang_get_failed: %w", err)
	}

	return code, nil
}

/*
Set stores a visitor's language preference with the session TTL.

Parameters:
  - context: context.Context
  - visitorID: string
  - code: string

Returns:
  - error: Execution errors
*/
func (repository *RedisSessionRepository) Set(context context.Context, visitorID string, code string) error {

	// Use constants for key prefix
	key := constants.RedisPrefixVisitorLang + visitorID

	// Store with the visitor session TTL so the preference expires with the cookie
	if err := repository.client.Set(context, key, code, constants.VisitorSessionTTL).Err(); err != nil {
		return fmt.Errorf("redis_visitor_lang_set_failed: %w", err)
	}

	return nil
}
