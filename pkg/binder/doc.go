// Package binder decodes JSON request bodies into Go values.
//
// The binder enforces the Content-Type, a body size limit, strict field
// matching (unknown fields are rejected unless WithUnknownFields is given)
// and rejects trailing data after the JSON value. It never judges field
// contents: absent and null fields stay nil so that package validator can
// tell "missing" from "empty".
//
// Errors wrap ErrMissingContentType, ErrUnsupportedMediaType,
// ErrBodyTooLarge or ErrFailedToParseJSON and can be tested with errors.Is.
package binder
