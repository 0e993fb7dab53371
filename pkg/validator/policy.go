package validator

import (
	"fmt"
	"sync/atomic"
)

// Kind classifies a recorded failure.
type Kind string

const (
	KindNull         Kind = "null"
	KindBlank        Kind = "blank"
	KindEmpty        Kind = "empty"
	KindBelowMinimum Kind = "below_minimum"
	KindAboveMaximum Kind = "above_maximum"
)

// AllKinds lists every failure kind in a stable order.
func AllKinds() []Kind {
	return []Kind{KindNull, KindBlank, KindEmpty, KindBelowMinimum, KindAboveMaximum}
}

// MessagePolicy produces the human-readable text recorded for each failure kind.
// Implementations must be pure: the same inputs always give the same text,
// and a single policy may be shared by any number of concurrent passes.
type MessagePolicy interface {
	Null() string
	Blank() string
	Empty() string
	// MinLength is called with the minimum number of characters and the observed character count.
	MinLength(min, actual int) string
	// MaxLength is called with the maximum number of bytes and the observed byte size.
	MaxLength(max, actual int) string
	MinValue(min, actual any) string
	MaxValue(max, actual any) string
}

// EnglishPolicy is the built-in MessagePolicy.
type EnglishPolicy struct{}

func (EnglishPolicy) Null() string  { return "must not be null" }
func (EnglishPolicy) Blank() string { return "must not be blank" }
func (EnglishPolicy) Empty() string { return "must not be empty" }

func (EnglishPolicy) MinLength(min, _ int) string {
	return fmt.Sprintf("is shorter than the min allowed length of %d characters", min)
}

func (EnglishPolicy) MaxLength(max, _ int) string {
	return fmt.Sprintf("exceeds the max allowed length of %d bytes", max)
}

func (EnglishPolicy) MinValue(min, _ any) string {
	return fmt.Sprintf("must be greater than or equal to %v", min)
}

func (EnglishPolicy) MaxValue(max, _ any) string {
	return fmt.Sprintf("must be less than or equal to %v", max)
}

// policyBox gives atomic.Pointer a single concrete type to hold.
type policyBox struct {
	policy MessagePolicy
}

var defaultPolicy atomic.Pointer[policyBox]

// SetDefaultPolicy replaces the process-wide policy used by sinks created
// without WithPolicy. Call it once during startup, before any validation pass
// runs. A nil policy restores EnglishPolicy.
func SetDefaultPolicy(p MessagePolicy) {
	if p == nil {
		defaultPolicy.Store(nil)
		return
	}
	defaultPolicy.Store(&policyBox{policy: p})
}

// DefaultPolicy returns the process-wide policy, EnglishPolicy unless replaced.
func DefaultPolicy() MessagePolicy {
	if box := defaultPolicy.Load(); box != nil {
		return box.policy
	}
	return EnglishPolicy{}
}
