package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no language can be negotiated.
const DefaultLanguage = "en"

const (
	// maxAcceptLanguageLength bounds the header size handed to the parser.
	maxAcceptLanguageLength = 4096
	// maxLangCodeLength follows the RFC 5646 recommendation.
	maxLangCodeLength = 35
)

// Negotiator picks the best supported language for a client preference.
// It is immutable and safe for concurrent use.
type Negotiator struct {
	supported   []string
	matcher     language.Matcher
	defaultLang string
}

// NewNegotiator builds a negotiator over the supported language codes.
// Codes that are not valid BCP 47 tags are skipped. When defaultLang is
// empty the first supported language is used.
func NewNegotiator(supported []string, defaultLang string) *Negotiator {
	n := &Negotiator{defaultLang: defaultLang}

	tags := make([]language.Tag, 0, len(supported))
	for _, code := range supported {
		tag, err := language.Parse(strings.TrimSpace(code))
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		n.supported = append(n.supported, strings.ToLower(strings.TrimSpace(code)))
	}
	if n.defaultLang == "" && len(n.supported) > 0 {
		n.defaultLang = n.supported[0]
	}
	if len(tags) > 0 {
		n.matcher = language.NewMatcher(tags)
	}
	return n
}

// Default returns the fallback language.
func (n *Negotiator) Default() string {
	return n.defaultLang
}

// Supported returns the normalized supported language codes.
func (n *Negotiator) Supported() []string {
	return append([]string(nil), n.supported...)
}

// Match negotiates an Accept-Language header value. It returns the default
// language when the header is empty, malformed, or names nothing supported.
func (n *Negotiator) Match(header string) string {
	if lang := n.match(header); lang != "" {
		return lang
	}
	return n.defaultLang
}

// Normalize maps a single language code (from a cookie or query parameter)
// to a supported language, or returns "" if none matches.
func (n *Negotiator) Normalize(code string) string {
	code = strings.TrimSpace(code)
	if code == "" || len(code) > maxLangCodeLength {
		return ""
	}
	return n.match(code)
}

func (n *Negotiator) match(header string) string {
	if header == "" || n.matcher == nil {
		return ""
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags, weights, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return ""
	}

	desired := make([]language.Tag, 0, len(tags))
	for i, tag := range tags {
		if weights[i] > 0 {
			desired = append(desired, tag)
		}
	}
	if len(desired) == 0 {
		return ""
	}

	_, idx, confidence := n.matcher.Match(desired...)
	if confidence == language.No {
		return ""
	}
	return n.supported[idx]
}

// ParseAcceptLanguage negotiates header against supportedLangs and falls
// back to defaultLang. Prefer a long-lived Negotiator on hot paths.
func ParseAcceptLanguage(header string, supportedLangs []string, defaultLang string) string {
	if header == "" || len(supportedLangs) == 0 {
		return defaultLang
	}
	n := NewNegotiator(supportedLangs, defaultLang)
	if lang := n.match(header); lang != "" {
		return lang
	}
	return defaultLang
}
