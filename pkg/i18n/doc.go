// Package i18n loads message catalogs and negotiates the request language.
//
// Catalogs are trees of message templates keyed by language. Templates use
// named placeholders in the form %{name}:
//
//	en:
//	  validation:
//	    max_length: "exceeds the max allowed length of %{max} bytes"
//
// A Translator loads a catalog once through a TranslationAdapter (MapAdapter,
// FileAdapter, FSAdapter for embed.FS or os.DirFS) and resolves dotted keys:
//
//	tr, err := i18n.NewTranslator(ctx,
//		i18n.NewFSAdapter(i18n.NewYAMLParser(), validator.Locales, "locales"),
//		i18n.WithDefaultLanguage("en"),
//	)
//	msg := tr.T("de", "validation.max_length", "max", "4000")
//
// Middleware stores the negotiated language in the request context, where
// GetLocale and Translator.Tc pick it up. Language negotiation follows
// golang.org/x/text/language matching, so "de-AT" resolves to a supported "de".
//
// Catalogs on disk can be reloaded while serving: Watch observes a
// directory and calls Translator.Reload after a burst of changes settles.
// A catalog that fails to load leaves the previous one in place.
//
// Translator is safe for concurrent use.
package i18n
