package menu

import (
	"strings"

	"github.com/krapesto/menu-api/internal/enum"
)

// ResolveLocalized picks the text for lang. English is primary and
// Lithuanian secondary; an empty choice falls back to the other language.
func ResolveLocalized(primary, secondary, lang string) string {
	if lang == enum.LanguageLT {
		if secondary != "" {
			return secondary
		}
		return primary
	}
	if primary != "" {
		return primary
	}
	return secondary
}

// NormalizeLanguage maps a raw lang parameter to a supported code,
// defaulting to English.
func NormalizeLanguage(raw string) string {
	if strings.EqualFold(strings.TrimSpace(raw), enum.LanguageLT) {
		return enum.LanguageLT
	}
	return enum.LanguageEN
}
