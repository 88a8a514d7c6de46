package constants

// Deployment environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Store collections
const (
	CollectionCoffees           = "coffees"
	CollectionUsers             = "users"
	CollectionIdentityDeletions = "identity_deletions"
)

// Greeting is served on the root path.
const Greeting = "My Coffee Shop Server is brewing Coffee!"
