package i18n

import "context"

type localeContextKey struct{}

// SetLocale stores the request locale in ctx.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// GetLocale returns the locale stored in ctx, or DefaultLanguage.
func GetLocale(ctx context.Context) string {
	return LocaleOr(ctx, DefaultLanguage)
}

// LocaleOr returns the locale stored in ctx, or fallback.
func LocaleOr(ctx context.Context, fallback string) string {
	if ctx == nil {
		return fallback
	}
	if locale, _ := ctx.Value(localeContextKey{}).(string); locale != "" {
		return locale
	}
	return fallback
}
