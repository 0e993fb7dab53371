package validator

// isNaN is true only for a floating-point NaN.
func isNaN[T Numeric](v T) bool {
	return v != v
}

// CheckMinimum reports whether v >= min. NaN is below every minimum.
func CheckMinimum[T Numeric](e *Errors, loc Path, v, min T) bool {
	if isNaN(v) || v < min {
		e.record(loc, KindBelowMinimum, e.Policy().MinValue(min, v))
		return false
	}
	return true
}

// CheckMaximum reports whether v <= max. NaN is above every maximum.
func CheckMaximum[T Numeric](e *Errors, loc Path, v, max T) bool {
	if isNaN(v) || v > max {
		e.record(loc, KindAboveMaximum, e.Policy().MaxValue(max, v))
		return false
	}
	return true
}

// CheckInRange reports whether min <= v <= max. Both bounds are tested
// independently; with min <= max at most one of them can fail. NaN records
// a single below-minimum failure.
func CheckInRange[T Numeric](e *Errors, loc Path, v, min, max T) bool {
	if isNaN(v) {
		return CheckMinimum(e, loc, v, min)
	}
	okMin := CheckMinimum(e, loc, v, min)
	okMax := CheckMaximum(e, loc, v, max)
	return okMin && okMax
}

func OptMinimum[T Numeric](e *Errors, loc Path, v *T, min T) bool {
	if v == nil {
		return true
	}
	return CheckMinimum(e, loc, *v, min)
}

func OptMaximum[T Numeric](e *Errors, loc Path, v *T, max T) bool {
	if v == nil {
		return true
	}
	return CheckMaximum(e, loc, *v, max)
}

// OptInRange treats a nil value as valid and otherwise behaves like CheckInRange.
func OptInRange[T Numeric](e *Errors, loc Path, v *T, min, max T) bool {
	if v == nil {
		return true
	}
	return CheckInRange(e, loc, *v, min, max)
}

func ReqMinimum[T Numeric](e *Errors, loc Path, v *T, min T) (T, bool) {
	val, ok := CheckNotNull(e, loc, v)
	if !ok {
		return val, false
	}
	return val, CheckMinimum(e, loc, val, min)
}

func ReqMaximum[T Numeric](e *Errors, loc Path, v *T, max T) (T, bool) {
	val, ok := CheckNotNull(e, loc, v)
	if !ok {
		return val, false
	}
	return val, CheckMaximum(e, loc, val, max)
}

// ReqInRange records a null failure for a nil value and skips the bounds.
func ReqInRange[T Numeric](e *Errors, loc Path, v *T, min, max T) (T, bool) {
	val, ok := CheckNotNull(e, loc, v)
	if !ok {
		return val, false
	}
	return val, CheckInRange(e, loc, val, min, max)
}
