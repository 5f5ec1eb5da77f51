package redis

import "fmt"

// Rate limiting key templates
const (
	KeyContactRateLimit = "ratelimit:contact:%s" // ratelimit:contact:{clientKey}
)

// KeyBuilder provides environment-aware Redis key building functionality
type KeyBuilder struct {
	prefix string // Environment prefix (staging/prod)
}

// NewKeyBuilder creates a new key builder with environment-based prefix
func NewKeyBuilder(environment string) *KeyBuilder {
	prefix := "prod"
	if environment == "development" || environment == "staging" {
		prefix = "staging"
	}

	return &KeyBuilder{
		prefix: prefix,
	}
}

// BuildKey constructs a Redis key with the environment prefix
func (kb *KeyBuilder) BuildKey(key string) string {
	return fmt.Sprintf("%s:%s", kb.prefix, key)
}

// GetPrefix returns the current environment prefix
func (kb *KeyBuilder) GetPrefix() string {
	return kb.prefix
}

// KeyRateLimit returns the rate-limit counter key for a client.
func (kb *KeyBuilder) KeyRateLimit(clientKey string) string {
	return kb.BuildKey(fmt.Sprintf(KeyContactRateLimit, clientKey))
}
