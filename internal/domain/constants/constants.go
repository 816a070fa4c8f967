// Package constants holds identifiers shared between configuration and infrastructure.
package constants

// Content store providers.
const (
	StoreProviderIrys = "irys"
	StoreProviderBlob = "blob"
)

// Analytics backends.
const (
	AnalyticsBackendPebble   = "pebble"
	AnalyticsBackendPostgres = "postgres"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Tag names attached to every persisted record.
const (
	TagContentType = "Content-Type"
	TagAppName     = "App-Name"
	TagAppVersion  = "App-Version"
	TagProfileType = "Profile-Type"
	TagCreator     = "Creator"
	TagName        = "Name"
	TagUsername    = "Username"
	TagPublic      = "Public"
	TagAllowSearch = "Allow-Search"
	TagMappingType = "Mapping-Type"
)

// Tag values that never change between deployments.
const (
	ContentTypeJSON         = "application/json"
	MappingTypeUsernameToTx = "username-to-transaction"
)
