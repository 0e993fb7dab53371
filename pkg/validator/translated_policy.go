package validator

import (
	"embed"
	"fmt"
	"strconv"
	"strings"
)

// Locales holds the bundled validation catalogs (locales/*.yaml), one
// top-level language key per file, ready for i18n.NewFSAdapter.
//
//go:embed locales/*.yaml
var Locales embed.FS

// Translation keys looked up by TranslatedPolicy.
const (
	KeyNull      = "validation.null"
	KeyBlank     = "validation.blank"
	KeyEmpty     = "validation.empty"
	KeyMinLength = "validation.min_length"
	KeyMaxLength = "validation.max_length"
	KeyMinValue  = "validation.min_value"
	KeyMaxValue  = "validation.max_value"
)

// Translator resolves a translation key for a language, substituting named
// %{param} placeholders from key/value pairs and falling back to
// defaultValue when the key is unknown. Called without args it returns the
// raw template. *i18n.Translator satisfies it.
type Translator interface {
	Td(lang, key, defaultValue string, args ...string) string
}

// TranslatedPolicy is a MessagePolicy backed by a translation catalog.
// Missing keys fall back to the English texts. Templates may use
// %{min}, %{max} and %{actual}.
//
// Templates are resolved once in NewTranslatedPolicy, so a catalog reload
// never changes the messages of a policy that already exists.
type TranslatedPolicy struct {
	lang      string
	null      string
	blank     string
	empty     string
	minLength string
	maxLength string
	minValue  string
	maxValue  string
}

// NewTranslatedPolicy binds tr to one language and snapshots its templates.
func NewTranslatedPolicy(tr Translator, lang string) TranslatedPolicy {
	e := EnglishPolicy{}
	return TranslatedPolicy{
		lang:      lang,
		null:      tr.Td(lang, KeyNull, e.Null()),
		blank:     tr.Td(lang, KeyBlank, e.Blank()),
		empty:     tr.Td(lang, KeyEmpty, e.Empty()),
		minLength: tr.Td(lang, KeyMinLength, "is shorter than the min allowed length of %{min} characters"),
		maxLength: tr.Td(lang, KeyMaxLength, "exceeds the max allowed length of %{max} bytes"),
		minValue:  tr.Td(lang, KeyMinValue, "must be greater than or equal to %{min}"),
		maxValue:  tr.Td(lang, KeyMaxValue, "must be less than or equal to %{max}"),
	}
}

// Lang returns the language the policy renders messages in.
func (p TranslatedPolicy) Lang() string {
	return p.lang
}

func (p TranslatedPolicy) Null() string  { return p.null }
func (p TranslatedPolicy) Blank() string { return p.blank }
func (p TranslatedPolicy) Empty() string { return p.empty }

func (p TranslatedPolicy) MinLength(min, actual int) string {
	return fill(p.minLength, "min", strconv.Itoa(min), strconv.Itoa(actual))
}

func (p TranslatedPolicy) MaxLength(max, actual int) string {
	return fill(p.maxLength, "max", strconv.Itoa(max), strconv.Itoa(actual))
}

func (p TranslatedPolicy) MinValue(min, actual any) string {
	return fill(p.minValue, "min", fmt.Sprint(min), fmt.Sprint(actual))
}

func (p TranslatedPolicy) MaxValue(max, actual any) string {
	return fill(p.maxValue, "max", fmt.Sprint(max), fmt.Sprint(actual))
}

// fill substitutes the bound placeholder and %{actual} in tmpl.
func fill(tmpl, bound, limit, actual string) string {
	if !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	return strings.NewReplacer("%{"+bound+"}", limit, "%{actual}", actual).Replace(tmpl)
}
