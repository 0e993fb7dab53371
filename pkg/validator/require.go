package validator

// Validatable is implemented by request types that know how to validate
// their own fields relative to the location they are found at.
type Validatable interface {
	Validate(e *Errors, loc Path)
}

// Require runs block with the dereferenced value when v is present.
// A nil v records a null failure and block is never called.
// It reports whether block ran.
func Require[T any](e *Errors, loc Path, v *T, block func(T)) bool {
	val, ok := CheckNotNull(e, loc, v)
	if !ok {
		return false
	}
	block(val)
	return true
}

// RequireNonEmpty runs block once when s is present and has elements.
// A nil slice records a null failure, an empty one an empty failure.
func RequireNonEmpty[T any](e *Errors, loc Path, s []T, block func([]T)) bool {
	if !CheckNotEmpty(e, loc, s) {
		return false
	}
	block(s)
	return true
}

func RequireNonEmptyMap[K comparable, V any](e *Errors, loc Path, m map[K]V, block func(map[K]V)) bool {
	if !CheckNotEmptyMap(e, loc, m) {
		return false
	}
	block(m)
	return true
}

// RequireValid validates a required nested object in place.
func RequireValid[T any, PT interface {
	*T
	Validatable
}](e *Errors, loc Path, v *T) bool {
	if _, ok := CheckNotNull(e, loc, v); !ok {
		return false
	}
	PT(v).Validate(e, loc)
	return true
}

// OptValid validates a nested object only when it is present.
func OptValid[T any, PT interface {
	*T
	Validatable
}](e *Errors, loc Path, v *T) {
	if v != nil {
		PT(v).Validate(e, loc)
	}
}

// Each calls fn for every element of items with the element location already built.
func Each[T any](loc Path, items []T, fn func(Path, T)) {
	for i, item := range items {
		fn(loc.Index(i), item)
	}
}
