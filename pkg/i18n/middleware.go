package i18n

import (
	"net/http"
	"strings"
)

// LangExtractor determines the preferred language of a request, or returns "".
type LangExtractor func(r *http.Request) string

// ExtractorConfig holds the request sources inspected by DefaultLangExtractor.
type ExtractorConfig struct {
	CookieName     string
	QueryParamName string
	SupportedLangs []string
}

type ExtractorOption func(*ExtractorConfig)

func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.CookieName = name
		}
	}
}

func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.QueryParamName = name
		}
	}
}

func WithSupportedLanguages(langs ...string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if len(langs) > 0 {
			c.SupportedLangs = langs
		}
	}
}

// DefaultLangExtractor checks, in order, the "lang" query parameter, the
// "lang" cookie and the Accept-Language header, returning the first value
// that matches a supported language. Without supported languages it
// returns the lowercased primary subtag of the first source found.
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	cfg := &ExtractorConfig{
		CookieName:     "lang",
		QueryParamName: "lang",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	neg := NewNegotiator(cfg.SupportedLangs, "")

	normalize := func(code string) string {
		if len(cfg.SupportedLangs) > 0 {
			return neg.Normalize(code)
		}
		code = strings.ToLower(strings.TrimSpace(code))
		if len(code) > maxLangCodeLength {
			return ""
		}
		return code
	}

	return func(r *http.Request) string {
		if cfg.QueryParamName != "" {
			if lang := normalize(r.URL.Query().Get(cfg.QueryParamName)); lang != "" {
				return lang
			}
		}

		if cfg.CookieName != "" {
			if cookie, err := r.Cookie(cfg.CookieName); err == nil {
				if lang := normalize(cookie.Value); lang != "" {
					return lang
				}
			}
		}

		header := r.Header.Get("Accept-Language")
		if header == "" {
			return ""
		}
		if len(cfg.SupportedLangs) > 0 {
			return neg.match(header)
		}
		first, _, _ := strings.Cut(header, ",")
		first, _, _ = strings.Cut(first, ";")
		return normalize(first)
	}
}

// Middleware stores the extracted language in the request context, falling
// back to DefaultLanguage. A nil extractor means DefaultLangExtractor().
func Middleware(extr LangExtractor) func(http.Handler) http.Handler {
	if extr == nil {
		extr = DefaultLangExtractor()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := extr(r)
			if lang == "" {
				lang = DefaultLanguage
			}
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
