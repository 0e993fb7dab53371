package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"
)

// Translator resolves message templates from a catalog loaded once through a
// TranslationAdapter. It is safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	adapter        TranslationAdapter
	mu             sync.RWMutex
}

// NewTranslator loads the catalog from adapter and applies options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		adapter:       adapter,
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := load(ctx, adapter)
	if err != nil {
		return nil, err
	}

	t.translations = translations
	t.logger.InfoContext(ctx, "catalog loaded", "languages", t.supportedLanguages())
	return t, nil
}

func load(ctx context.Context, adapter TranslationAdapter) (map[string]map[string]any, error) {
	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, tree := range translations {
		if lang == "" {
			return nil, fmt.Errorf("%w: empty language code", ErrInvalidCatalog)
		}
		if tree == nil {
			return nil, fmt.Errorf("%w: nil catalog for language %q", ErrInvalidCatalog, lang)
		}
	}
	return translations, nil
}

// Reload reads the catalog from the adapter again and swaps it in atomically.
// On error the current catalog is kept.
func (t *Translator) Reload(ctx context.Context) error {
	translations, err := load(ctx, t.adapter)
	if err != nil {
		t.logger.ErrorContext(ctx, "catalog reload failed", "error", err)
		return err
	}

	t.mu.Lock()
	t.translations = translations
	langs := t.supportedLanguages()
	t.mu.Unlock()

	t.logger.InfoContext(ctx, "catalog reloaded", "languages", langs)
	return nil
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// SupportedLanguages returns the catalog languages, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// DefaultLanguage returns the language used by Tc when the context carries none.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// lookup walks a dot-separated key through nested maps:
// "validation.null" reads tree["validation"]["null"].
func lookup(tree map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := tree

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}

		switch next := val.(type) {
		case map[string]any:
			current = next
		case map[any]any:
			current = make(map[string]any, len(next))
			for k, v := range next {
				current[keyString(k)] = v
			}
		default:
			return nil, false
		}
	}
	return nil, false
}

func (t *Translator) template(lang, key string) (string, bool) {
	tree, ok := t.translations[lang]
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("language not supported", "lang", lang, "key", key)
		}
		return "", false
	}

	val, ok := lookup(tree, key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found", "lang", lang, "key", key)
		}
		return "", false
	}

	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		if t.missingLogMode {
			t.logger.Warn("translation is not a string", "lang", lang, "key", key, "type", fmt.Sprintf("%T", v))
		}
		return "", false
	}
}

// HasTranslation reports whether key resolves to a template for lang.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.template(lang, key)
	return ok
}

// T translates key for lang. args are key/value pairs substituted into
// %{name} placeholders. An unknown key yields the key itself, or an empty
// string when WithFallbackToKey(false) was given.
//
//	// "welcome": "Hello, %{name}!"
//	translator.T("en", "welcome", "name", "John") // "Hello, John!"
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if tmpl, ok := t.template(lang, key); ok {
		return substitute(tmpl, args)
	}
	if t.fallbackToKey {
		return substitute(key, args)
	}
	return ""
}

// Td is T with an explicit fallback template used when key is unknown.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if tmpl, ok := t.template(lang, key); ok {
		return substitute(tmpl, args)
	}
	return substitute(defaultValue, args)
}

// Tc translates key using the locale stored in ctx by Middleware or SetLocale.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(LocaleOr(ctx, t.defaultLang), key, args...)
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} placeholders from key/value pairs. Unknown
// placeholders are left untouched; an odd trailing argument is ignored.
func substitute(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
