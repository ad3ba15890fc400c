// Package i18n translates user-facing response messages into English,
// Gujarati and Hindi.
package i18n

import (
	"strings"

	"shopseva/config"
	"shopseva/internal/domain/service"

	"golang.org/x/text/language"
)

type translator struct {
	matcher     language.Matcher
	supported   []language.Tag
	defaultLang string
}

// NewTranslator builds a translator whose default is the configured language,
// or English when that language has no catalog.
func NewTranslator(cfg *config.Config) service.Translator {
	defaultLang := "en"
	if _, ok := catalog[cfg.I18n.DefaultLanguage]; ok {
		defaultLang = cfg.I18n.DefaultLanguage
	}

	// The first tag is the matcher's fallback.
	supported := []language.Tag{language.Make(defaultLang)}
	for _, tag := range []language.Tag{language.English, language.Gujarati, language.Hindi} {
		if tag.String() != defaultLang {
			supported = append(supported, tag)
		}
	}

	return &translator{
		matcher:     language.NewMatcher(supported),
		supported:   supported,
		defaultLang: defaultLang,
	}
}

func (t *translator) Match(acceptLanguage string) string {
	acceptLanguage = strings.TrimSpace(acceptLanguage)
	if acceptLanguage == "" {
		return t.defaultLang
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return t.defaultLang
	}

	_, index, confidence := t.matcher.Match(tags...)
	if confidence == language.No {
		return t.defaultLang
	}
	base, _ := t.supported[index].Base()

	return base.String()
}

func (t *translator) Translate(lang, key, fallback string) string {
	if msg, ok := catalog[lang][key]; ok {
		return msg
	}
	if msg, ok := catalog[t.defaultLang][key]; ok {
		return msg
	}
	if fallback != "" {
		return fallback
	}

	return key
}
