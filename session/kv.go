package session

import "context"

// Scope names one of the two mutually exclusive places a credential may live.
type Scope string

const (
	// ScopeDurable survives restarts ("remember me").
	ScopeDurable Scope = "durable"
	// ScopeEphemeral lives only as long as the process.
	ScopeEphemeral Scope = "ephemeral"
)

const (
	keyToken      = "token"
	keyUser       = "user"
	keyRememberMe = "rememberMe"
	keyTheme      = "theme"
)

// KV is a string key/value store backing one scope.
type KV interface {
	// Get returns the value and whether the key exists
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key
	Set(ctx context.Context, key, value string) error

	// Delete removes keys; missing keys are not an error
	Delete(ctx context.Context, keys ...string) error
}
