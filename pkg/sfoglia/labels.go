package sfoglia

import (
	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// NewMessageBundle builds an i18n bundle from TOML message files for
// localizing wizard page labels and bodies.
func NewMessageBundle(defaultLang language.Tag, paths ...string) (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(defaultLang)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, path := range paths {
		if _, err := bundle.LoadMessageFile(path); err != nil {
			return nil, NewInfrastructureError("load_messages", err)
		}
	}
	return bundle, nil
}

// NewLocalizer creates a localizer preferring the given languages in order
// (BCP 47 tags, e.g. "it", "en-AU").
func NewLocalizer(bundle *i18n.Bundle, langs ...string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, langs...)
}

// localizedText resolves a message id through the localizer, falling back
// to the literal text when no localizer is set, the id is empty, or no
// translation exists.
func localizedText(loc *i18n.Localizer, id, fallback string) string {
	if loc == nil || id == "" {
		return fallback
	}
	msg, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID:      id,
		DefaultMessage: &i18n.Message{ID: id, Other: fallback},
	})
	if err != nil {
		return fallback
	}
	return msg
}
