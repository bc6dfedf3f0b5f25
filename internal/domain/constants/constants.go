// Package constants holds string values shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Cache drivers
const (
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
)

// Timing provider names
const (
	ProviderRegional = "regional"
	ProviderGeneric  = "generic"
	// ProviderRegionalFallback is the generic provider run with the regional profile.
	ProviderRegionalFallback = "generic-regional-profile"
)
