// Package i18n serves the page copy and the simulator's display lists from
// embedded JSON catalogs, one file per language.
package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"slices"
	"strconv"
	"strings"
	"sync"
)

//go:embed *.json
var fs embed.FS

// DefaultLang is used when a key or language is missing.
const DefaultLang = "en"

// Languages lists the catalogs shipped with the binary.
var Languages = []string{"en", "es"}

// translations stores flattened keys: "en" -> "nav.home" -> "Home".
// Arrays flatten to indexed keys: "landing.placeholders.0".
var (
	translations = make(map[string]map[string]string)
	mutex        sync.RWMutex
)

// Load reads every embedded catalog.
func Load() error {
	mutex.Lock()
	defer mutex.Unlock()

	entries, err := fs.ReadDir(".")
	if err != nil {
		return fmt.Errorf("failed to read embedded locales: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		lang := strings.TrimSuffix(entry.Name(), ".json")
		content, err := fs.ReadFile(entry.Name())
		if err != nil {
			return fmt.Errorf("failed to read locale file %s: %w", entry.Name(), err)
		}

		var result map[string]any
		if err := json.Unmarshal(content, &result); err != nil {
			return fmt.Errorf("failed to unmarshal locale %s: %w", entry.Name(), err)
		}

		flat := make(map[string]string)
		flatten("", result, flat)
		translations[lang] = flat
		log.Printf("[INFO] Loaded locale: %s (%d keys)", lang, len(flat))
	}

	return nil
}

// IsSupported reports whether lang has a catalog.
func IsSupported(lang string) bool {
	return slices.Contains(Languages, lang)
}

func flatten(prefix string, value any, result map[string]string) {
	join := func(k string) string {
		if prefix == "" {
			return k
		}
		return prefix + "." + k
	}

	switch v := value.(type) {
	case map[string]any:
		for k, child := range v {
			flatten(join(k), child, result)
		}
	case []any:
		for i, child := range v {
			flatten(join(strconv.Itoa(i)), child, result)
		}
	case string:
		result[prefix] = v
	case nil:
	default:
		result[prefix] = fmt.Sprintf("%v", v)
	}
}

// T translates key in the language carried by ctx.
func T(ctx context.Context, key string, args ...map[string]any) string {
	return Translate(GetLocale(ctx), key, args...)
}

// Translate looks key up in lang, then in the default language, and finally
// returns the key itself. {name} placeholders are replaced from args.
func Translate(lang, key string, args ...map[string]any) string {
	mutex.RLock()
	defer mutex.RUnlock()

	if val, ok := lookup(lang, key); ok {
		return format(val, args...)
	}
	return key
}

func lookup(lang, key string) (string, bool) {
	if trans, ok := translations[lang]; ok {
		if val, ok := trans[key]; ok {
			return val, true
		}
	}
	if lang != DefaultLang {
		if trans, ok := translations[DefaultLang]; ok {
			if val, ok := trans[key]; ok {
				return val, true
			}
		}
	}
	return "", false
}

// List returns the string array stored under key, in order. A language that
// lacks the array falls back to the default language as a whole, so lists
// are never mixed across languages.
func List(lang, key string) []string {
	mutex.RLock()
	defer mutex.RUnlock()

	if out := list(translations[lang], key); len(out) > 0 {
		return out
	}
	return list(translations[DefaultLang], key)
}

func list(trans map[string]string, key string) []string {
	var out []string
	for i := 0; ; i++ {
		val, ok := trans[key+"."+strconv.Itoa(i)]
		if !ok {
			return out
		}
		out = append(out, val)
	}
}

// Count returns the length of the array of objects stored under key, such as
// "pricing.plans" whose items are "pricing.plans.0.name", and so on.
func Count(lang, key string) int {
	mutex.RLock()
	defer mutex.RUnlock()

	if n := count(translations[lang], key); n > 0 {
		return n
	}
	return count(translations[DefaultLang], key)
}

func count(trans map[string]string, key string) int {
	n := 0
	for {
		prefix := key + "." + strconv.Itoa(n) + "."
		found := false
		for k := range trans {
			if strings.HasPrefix(k, prefix) {
				found = true
				break
			}
		}
		if !found {
			return n
		}
		n++
	}
}

// format replaces {var} placeholders with values from args if present.
func format(text string, args ...map[string]any) string {
	if len(args) == 0 {
		return text
	}

	for k, v := range args[0] {
		text = strings.ReplaceAll(text, "{"+k+"}", fmt.Sprintf("%v", v))
	}
	return text
}

type contextKey string

// LocaleContextKey holds the request language in a context.Context.
const LocaleContextKey contextKey = "locale"

// GetLocale extracts the locale set by the Locale middleware, defaulting to "en".
func GetLocale(ctx context.Context) string {
	if val, ok := ctx.Value(LocaleContextKey).(string); ok && val != "" {
		return val
	}
	return DefaultLang
}

// WithLocale returns a copy of ctx carrying lang.
func WithLocale(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, LocaleContextKey, lang)
}
