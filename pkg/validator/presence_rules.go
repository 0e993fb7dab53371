package validator

import "strings"

// CheckNotNull records a null failure when v is nil. On success the
// dereferenced value is returned.
func CheckNotNull[T any](e *Errors, loc Path, v *T) (T, bool) {
	if v == nil {
		var zero T
		e.record(loc, KindNull, e.Policy().Null())
		return zero, false
	}
	return *v, true
}

// IsBlank reports whether s is nil, empty or whitespace only.
func IsBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// CheckNotBlank records a null failure for nil and a blank failure for an
// empty or whitespace-only value. At most one message is recorded.
func CheckNotBlank(e *Errors, loc Path, s *string) (string, bool) {
	v, ok := CheckNotNull(e, loc, s)
	if !ok {
		return "", false
	}
	return v, CheckNotBlankString(e, loc, v)
}

// CheckNotBlankString is CheckNotBlank for values that cannot be absent.
func CheckNotBlankString(e *Errors, loc Path, s string) bool {
	if strings.TrimSpace(s) == "" {
		e.record(loc, KindBlank, e.Policy().Blank())
		return false
	}
	return true
}

// OptNotBlank accepts nil but rejects a present blank value.
func OptNotBlank(e *Errors, loc Path, s *string) bool {
	if s == nil {
		return true
	}
	return CheckNotBlankString(e, loc, *s)
}

// CheckNotEmpty treats a nil slice as absent (a JSON null or a missing field)
// and a non-nil empty slice as empty.
func CheckNotEmpty[T any](e *Errors, loc Path, s []T) bool {
	if s == nil {
		e.record(loc, KindNull, e.Policy().Null())
		return false
	}
	if len(s) == 0 {
		e.record(loc, KindEmpty, e.Policy().Empty())
		return false
	}
	return true
}

// CheckNotEmptyMap is CheckNotEmpty for maps.
func CheckNotEmptyMap[K comparable, V any](e *Errors, loc Path, m map[K]V) bool {
	if m == nil {
		e.record(loc, KindNull, e.Policy().Null())
		return false
	}
	if len(m) == 0 {
		e.record(loc, KindEmpty, e.Policy().Empty())
		return false
	}
	return true
}
