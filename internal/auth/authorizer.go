package auth

import (
	"context"
	"crypto/subtle"
	"errors"
)

var ErrUnauthorized = errors.New("unauthorized")

// Authorizer validates bearer credentials. Session issuance lives outside
// this service; callers present a pre-issued key.
type Authorizer interface {
	// Authorize returns nil when the presented key grants access.
	Authorize(ctx context.Context, apiKey string) error
}

// StaticKeyAuthorizer accepts a single configured API key.
type StaticKeyAuthorizer struct {
	key string
}

func NewStaticKeyAuthorizer(key string) *StaticKeyAuthorizer {
	return &StaticKeyAuthorizer{key: key}
}

func (a *StaticKeyAuthorizer) Authorize(ctx context.Context, apiKey string) error {
	if apiKey == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(a.key)) != 1 {
		return ErrUnauthorized
	}
	return nil
}
