// Package locale holds the translated UI strings. Farsi is the site's
// primary language; lookups fall back to the Farsi catalog and finally to the
// key itself, matching the reference site's behavior.
package locale

import "fmt"

// Default is the language used when none is configured.
const Default = "fa"

var catalogs = map[string]map[string]string{
	"fa": fa,
	"en": en,
}

// T returns the translation for a dot-path key, falling back to Farsi and
// then to the key itself.
func T(lang, key string) string {
	if msgs, ok := catalogs[lang]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	if msg, ok := fa[key]; ok {
		return msg
	}
	return key
}

// N formats a translation carrying one numeric placeholder.
func N(lang, key string, n int) string {
	return fmt.Sprintf(T(lang, key), n)
}

// N2 formats a translation carrying two numeric placeholders.
func N2(lang, key string, a, b int) string {
	return fmt.Sprintf(T(lang, key), a, b)
}
