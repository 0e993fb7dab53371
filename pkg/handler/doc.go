// Package handler adapts typed, self-validating request documents to
// net/http.
//
// Validated binds the body into R, calls (*R).Validate with a new
// validator.Errors report and answers 422 Unprocessable Entity with
//
//	{"error": "validation_failed", "details": {"byKey": {...}}}
//
// when anything was recorded. Accepted requests reach the HandlerFunc with
// the decoded value. Binding failures are rendered by the ErrorHandler
// (DefaultErrorHandler maps them to 400, 413 or 415).
//
// Messages follow the policy chosen by the PolicyResolver; LocalePolicy
// combines i18n.Middleware with a translation catalog so every client gets
// messages in its negotiated language.
package handler
