// Package constants holds provider names and environment identifiers shared across layers.
package constants

// Environment names.
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

// Persistence providers.
const (
	StoreProviderPostgres  = "postgres"
	StoreProviderFirestore = "firestore"
)

// Identity providers.
const (
	AuthProviderLocal    = "local"
	AuthProviderFirebase = "firebase"
)

// DefaultBrandID is assigned to partners and locations provisioned without explicit brands.
const DefaultBrandID = "justsmashed"

// Submission event types.
const (
	EventSubmissionCreated  = "submission.created"
	EventSubmissionReviewed = "submission.reviewed"
)
