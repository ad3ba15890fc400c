// Package constants defines names shared between configuration and infrastructure.
package constants

// Pub/Sub providers
const (
	PubSubProviderGoogle = "google"
	PubSubProviderLocal  = "local"
	PubSubProviderNoop   = "noop"
)

// EnvLocal is the env.env value of a developer machine.
const EnvLocal = "local"

// Request headers
const (
	HeaderDeviceID = "X-Device-Id"
	HeaderLanguage = "Accept-Language"

	// HeaderContentLanguage names the language of the response messages.
	HeaderContentLanguage = "Content-Language"
)

// QueryLanguage overrides Accept-Language when present.
const QueryLanguage = "lang"
