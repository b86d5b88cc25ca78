// Package constants holds shared provider identifiers.
package constants

// Pub/Sub provider types for store-changed event publishing.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// OTP challenge store providers.
const (
	OTPProviderLocal = "local"
	OTPProviderRedis = "redis"
)
