package utils

import (
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

// message catalogs for notification texts, one file per supported
// recipient language
var messageFiles = []string{"en.yaml", "zh_tw.yaml"}

var bundle *i18n.Bundle

// InitI18NBundle loads every message catalog from the directory named
// by `i18n.dir`. Both binaries call it once at startup, before any
// notification text is rendered.
func InitI18NBundle() {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	for _, f := range messageFiles {
		bundle.MustLoadMessageFile(path.Join(viper.GetString("i18n.dir"), f))
	}
}

// NewLocalizer returns a localizer for one recipient language. Message
// ids missing a translation fall back to English.
func NewLocalizer(lang string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, lang)
}
