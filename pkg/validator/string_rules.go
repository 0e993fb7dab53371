package validator

import "unicode/utf8"

// Minimum bounds count characters (runes), maximum bounds count UTF-8 bytes.

// CheckMinLength reports whether s has at least min characters.
func CheckMinLength(e *Errors, loc Path, s string, min int) bool {
	if n := utf8.RuneCountInString(s); n < min {
		e.record(loc, KindBelowMinimum, e.Policy().MinLength(min, n))
		return false
	}
	return true
}

// CheckMaxLength reports whether s fits into max bytes.
func CheckMaxLength(e *Errors, loc Path, s string, max int) bool {
	if n := len(s); n > max {
		e.record(loc, KindAboveMaximum, e.Policy().MaxLength(max, n))
		return false
	}
	return true
}

// CheckLength applies both bounds. Both are always evaluated, so a single
// value may collect a min and a max failure.
func CheckLength(e *Errors, loc Path, s string, min, max int) bool {
	okMin := CheckMinLength(e, loc, s, min)
	okMax := CheckMaxLength(e, loc, s, max)
	return okMin && okMax
}

func OptMinLength(e *Errors, loc Path, s *string, min int) bool {
	if s == nil {
		return true
	}
	return CheckMinLength(e, loc, *s, min)
}

func OptMaxLength(e *Errors, loc Path, s *string, max int) bool {
	if s == nil {
		return true
	}
	return CheckMaxLength(e, loc, *s, max)
}

// OptLength treats a nil value as valid and otherwise behaves like CheckLength.
func OptLength(e *Errors, loc Path, s *string, min, max int) bool {
	if s == nil {
		return true
	}
	return CheckLength(e, loc, *s, min, max)
}

func ReqMinLength(e *Errors, loc Path, s *string, min int) (string, bool) {
	v, ok := CheckNotNull(e, loc, s)
	if !ok {
		return "", false
	}
	return v, CheckMinLength(e, loc, v, min)
}

func ReqMaxLength(e *Errors, loc Path, s *string, max int) (string, bool) {
	v, ok := CheckNotNull(e, loc, s)
	if !ok {
		return "", false
	}
	return v, CheckMaxLength(e, loc, v, max)
}

// ReqLength records a null failure for a nil value and skips the bounds;
// otherwise it behaves like CheckLength. The dereferenced value is returned
// whenever s is not nil.
func ReqLength(e *Errors, loc Path, s *string, min, max int) (string, bool) {
	v, ok := CheckNotNull(e, loc, s)
	if !ok {
		return "", false
	}
	return v, CheckLength(e, loc, v, min, max)
}
