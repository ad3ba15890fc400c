package service

// Translator renders user-facing messages in the caller's language.
type Translator interface {
	// Translate returns the message for key in lang, falling back to the
	// default language, then to fallback, then to the key itself.
	Translate(lang, key, fallback string) string

	// Match picks the best supported language for an Accept-Language value.
	Match(acceptLanguage string) string
}
