// Package i18n provides the pluggable message lookup used by presentation
// layers. The core never translates; collaborators pass their user-facing
// strings through a Translator before rendering.
package i18n

import (
	_ "embed"
	"encoding/json"
	"os"
	"strings"
)

// frJSON contains the French message catalog, embedded at compile time so
// the binary carries its translations.
//
//go:embed fr.json
var frJSON []byte

// Translator maps a message key (the English text) to its localized form.
// Unknown keys are returned unchanged, so new messages degrade to English
// instead of breaking.
type Translator func(key string) string

// None returns the pass-through Translator.
func None() Translator {
	return func(key string) string { return key }
}

// French returns the Translator backed by the embedded French catalog.
func French() Translator {
	var catalog map[string]string
	// The catalog is embedded and validated by tests; a broken build falls
	// back to English rather than panicking at startup.
	if err := json.Unmarshal(frJSON, &catalog); err != nil {
		return None()
	}
	return func(key string) string {
		if msg, ok := catalog[key]; ok {
			return msg
		}
		return key
	}
}

// FromEnv picks the Translator matching the user's locale, determined from
// the LANG/LC_ALL environment variables ("fr_CA.UTF-8" → French).
func FromEnv() Translator {
	lang := os.Getenv("LC_ALL")
	if lang == "" {
		lang = os.Getenv("LANG")
	}
	if strings.HasPrefix(lang, "fr") {
		return French()
	}
	return None()
}
