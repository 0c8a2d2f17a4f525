// Package auth maps API tokens to the system that owns them.
package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/ambdroid/PluralKit/internal/entities"

	"go.uber.org/zap"
)

// TokenLookup finds the system owning a token. A nil system means no match.
type TokenLookup interface {
	GetSystemByToken(ctx context.Context, token string) (*entities.System, error)
}

// Cache stores token digests mapped to system ids.
type Cache interface {
	Get(ctx context.Context, key string) (entities.SystemID, bool, error)
	Set(ctx context.Context, key string, id entities.SystemID, ttl time.Duration) error
}

// Authenticator resolves bearer tokens to caller identities.
type Authenticator struct {
	log    *zap.SugaredLogger
	lookup TokenLookup
	cache  Cache
	ttl    time.Duration
}

// NewAuthenticator builds an Authenticator. A nil cache disables caching.
func NewAuthenticator(log *zap.SugaredLogger, lookup TokenLookup, cache Cache, ttl time.Duration) *Authenticator {
	if cache == nil {
		cache = nopCache{}
	}
	return &Authenticator{
		log:    log.Named("auth"),
		lookup: lookup,
		cache:  cache,
		ttl:    ttl,
	}
}

// Authenticate returns the caller's system id, or ErrInvalidToken when no system owns token.
func (a *Authenticator) Authenticate(ctx context.Context, token string) (entities.SystemID, error) {
	if token == "" {
		return 0, entities.ErrInvalidToken
	}

	key := cacheKey(token)
	id, ok, err := a.cache.Get(ctx, key)
	if err != nil {
		a.log.Warnw("token cache read failed", "error", err)
	}
	if ok {
		return id, nil
	}

	sys, err := a.lookup.GetSystemByToken(ctx, token)
	if err != nil {
		return 0, fmt.Errorf("token lookup: %w", err)
	}
	if sys == nil {
		return 0, entities.ErrInvalidToken
	}

	if err := a.cache.Set(ctx, key, sys.ID, a.ttl); err != nil {
		a.log.Warnw("token cache write failed", "error", err, "system_id", sys.ID)
	}
	return sys.ID, nil
}

// cacheKey never stores the raw token.
func cacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "token:" + hex.EncodeToString(sum[:])
}

type nopCache struct{}

func (nopCache) Get(context.Context, string) (entities.SystemID, bool, error) { return 0, false, nil }

func (nopCache) Set(context.Context, string, entities.SystemID, time.Duration) error { return nil }
