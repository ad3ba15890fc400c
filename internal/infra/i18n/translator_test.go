package i18n

import (
	"testing"

	"shopseva/config"

	"github.com/stretchr/testify/assert"
)

func newTestTranslator(defaultLang string) *translator {
	cfg := &config.Config{}
	cfg.I18n.DefaultLanguage = defaultLang

	return NewTranslator(cfg).(*translator)
}

func TestTranslator_Match(t *testing.T) {
	tr := newTestTranslator("en")

	tests := []struct {
		header string
		want   string
	}{
		{header: "", want: "en"},
		{header: "gu", want: "gu"},
		{header: "hi-IN,hi;q=0.9,en;q=0.8", want: "hi"},
		{header: "gu-IN", want: "gu"},
		{header: "fr-FR,fr;q=0.9", want: "en"},
		{header: "not a language;;", want: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Match(tt.header))
		})
	}
}

func TestTranslator_Translate(t *testing.T) {
	tr := newTestTranslator("en")

	assert.Equal(t, "દુકાન મળી નથી", tr.Translate("gu", "SHOP_NOT_FOUND", ""))
	assert.Equal(t, "दुकान नहीं मिली", tr.Translate("hi", "SHOP_NOT_FOUND", ""))
	// Missing in Gujarati, present in English.
	assert.Equal(t, "Message not found", tr.Translate("gu", "MESSAGE_NOT_FOUND", ""))
	assert.Equal(t, "custom text", tr.Translate("hi", "UNKNOWN_KEY", "custom text"))
	assert.Equal(t, "UNKNOWN_KEY", tr.Translate("hi", "UNKNOWN_KEY", ""))
}

func TestTranslator_UnknownDefaultFallsBackToEnglish(t *testing.T) {
	tr := newTestTranslator("fr")

	assert.Equal(t, "en", tr.defaultLang)
	assert.Equal(t, "en", tr.Match(""))
}

func TestTranslator_GujaratiDefault(t *testing.T) {
	tr := newTestTranslator("gu")

	assert.Equal(t, "gu", tr.Match("de"))
	assert.Equal(t, "दुकान स्वीकृत", tr.Translate("hi", "SHOP_APPROVED", ""))
	assert.Equal(t, "Message not found", tr.Translate("hi", "MESSAGE_NOT_FOUND", "Message not found"))
}

func TestCatalog_GujaratiAndHindiKeysExistInEnglish(t *testing.T) {
	for _, lang := range []string{"gu", "hi"} {
		for key := range catalog[lang] {
			_, ok := catalog["en"][key]
			assert.True(t, ok, "%s key %s has no English entry", lang, key)
		}
	}
}
