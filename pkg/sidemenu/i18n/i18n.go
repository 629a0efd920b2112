// Package i18n localizes menu titles from JSON or TOML message files.
package i18n

import (
	"encoding/json"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/go-errors/errors"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/atomic"
	"golang.org/x/text/language"
)

// Message is an alias for i18n.Message to avoid requiring users to import go-i18n directly
type Message = i18n.Message

// MessageFile is an in-memory message file. Name carries the language and
// format, e.g. "active.fr.toml".
type MessageFile struct {
	Name    string
	Content []byte
}

// catalog is an immutable bundle plus the localizer for one language.
type catalog struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	lang      language.Tag
}

func (c *catalog) withLanguage(lang language.Tag) *catalog {
	return &catalog{
		bundle:    c.bundle,
		localizer: i18n.NewLocalizer(c.bundle, lang.String(), language.English.String()),
		lang:      lang,
	}
}

var current atomic.Pointer[catalog]

func load(parse func(*i18n.Bundle) error) error {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	if err := parse(bundle); err != nil {
		return err
	}

	lang := language.English
	if prev := current.Load(); prev != nil {
		lang = prev.lang
	}
	current.Store((&catalog{bundle: bundle}).withLanguage(lang))
	return nil
}

// InitI18N loads message files from disk. The active language survives a reload.
func InitI18N(paths []string) error {
	return load(func(bundle *i18n.Bundle) error {
		for _, path := range paths {
			if _, err := bundle.LoadMessageFile(path); err != nil {
				return errors.Errorf("loading messages from %s: %w", filepath.Base(path), err)
			}
		}
		return nil
	})
}

func InitI18NFromBytes(files []MessageFile) error {
	return load(func(bundle *i18n.Bundle) error {
		for _, f := range files {
			if _, err := bundle.ParseMessageFileBytes(f.Content, f.Name); err != nil {
				return errors.Errorf("parsing messages %s: %w", f.Name, err)
			}
		}
		return nil
	})
}

// SetLanguage switches the active language. It does nothing before a bundle is loaded.
func SetLanguage(lang language.Tag) {
	if c := current.Load(); c != nil {
		current.Store(c.withLanguage(lang))
	}
}

func SetWithCode(code string) error {
	lang, err := language.Parse(code)
	if err != nil {
		return errors.Wrap(err, 0)
	}
	SetLanguage(lang)
	return nil
}

// Localize returns the translation of message for the current language. Before any
// bundle is loaded, or when no translation exists, the message's Other text is used.
//
//	i18n.Localize(&i18n.Message{
//	    ID:    "menu_settings",
//	    Other: "Settings",
//	}, nil)
func Localize(message *Message, templateData map[string]interface{}) string {
	if message == nil {
		return ""
	}
	c := current.Load()
	if c == nil {
		return message.Other
	}

	msg, err := c.localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: message,
		TemplateData:   templateData,
	})
	if err != nil {
		return message.Other
	}
	return msg
}

// Reset drops the loaded bundle.
func Reset() {
	current.Store(nil)
}
