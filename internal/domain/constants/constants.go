// Package constants holds string constants shared between config and infra.
package constants

// Environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Closure staleness zone policies for the read path.
const (
	ClosureCheckZoneClock = "clock"
	ClosureCheckZoneEntry = "entry"
)
