package validator

import (
	"encoding/json"
	"errors"
	"maps"
	"strings"
)

// Numeric covers every ordered numeric width the range checks accept.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Option configures a new Errors sink.
type Option func(*Errors)

// WithPolicy sets the message policy used by the sink.
// A nil policy is ignored and the process-wide default is kept.
func WithPolicy(p MessagePolicy) Option {
	return func(e *Errors) {
		if p != nil {
			e.policy = p
		}
	}
}

// Errors accumulates the failures of a single validation pass.
// Failures are either keyed by the location of the offending field or general.
// The sink is append-only and is not safe for concurrent writers: every pass
// must own its own instance. The zero value is ready to use with DefaultPolicy.
type Errors struct {
	byKey   map[string][]string
	fields  []string
	general []string
	kinds   map[Kind]int
	policy  MessagePolicy
}

// NewErrors creates an empty sink. Without WithPolicy the sink captures
// DefaultPolicy at construction time.
func NewErrors(opts ...Option) *Errors {
	e := &Errors{
		byKey: make(map[string][]string),
		kinds: make(map[Kind]int),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.policy == nil {
		e.policy = DefaultPolicy()
	}
	return e
}

// Add appends message to the failures recorded at loc.
func (e *Errors) Add(loc Path, message string) {
	if e.byKey == nil {
		e.byKey = make(map[string][]string)
	}
	key := string(loc)
	msgs, ok := e.byKey[key]
	if !ok {
		e.fields = append(e.fields, key)
	}
	e.byKey[key] = append(msgs, message)
}

// AddGeneral records a failure that is not tied to a location.
func (e *Errors) AddGeneral(message string) {
	e.general = append(e.general, message)
}

func (e *Errors) record(loc Path, kind Kind, message string) {
	if e.kinds == nil {
		e.kinds = make(map[Kind]int)
	}
	e.kinds[kind]++
	e.Add(loc, message)
}

func (e *Errors) IsEmpty() bool {
	return len(e.byKey) == 0 && len(e.general) == 0
}

func (e *Errors) IsNotEmpty() bool {
	return !e.IsEmpty()
}

// Len returns the total number of recorded messages.
func (e *Errors) Len() int {
	n := len(e.general)
	for _, msgs := range e.byKey {
		n += len(msgs)
	}
	return n
}

// Has reports whether at least one failure is recorded at loc.
func (e *Errors) Has(loc Path) bool {
	return len(e.byKey[string(loc)]) > 0
}

// Get returns a copy of the messages recorded at loc, in insertion order.
func (e *Errors) Get(loc Path) []string {
	msgs := e.byKey[string(loc)]
	if len(msgs) == 0 {
		return nil
	}
	out := make([]string, len(msgs))
	copy(out, msgs)
	return out
}

// Fields returns the failed locations in the order they were first recorded.
func (e *Errors) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// ByKey returns a copy of the location-keyed failures.
func (e *Errors) ByKey() map[string][]string {
	out := make(map[string][]string, len(e.byKey))
	for k, v := range e.byKey {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// General returns a copy of the failures not tied to a location.
func (e *Errors) General() []string {
	if len(e.general) == 0 {
		return nil
	}
	return append([]string(nil), e.general...)
}

// Kinds returns how many failures of each kind were recorded by the check functions.
// Messages added directly through Add or AddGeneral are not classified.
func (e *Errors) Kinds() map[Kind]int {
	out := make(map[Kind]int, len(e.kinds))
	maps.Copy(out, e.kinds)
	return out
}

// Policy returns the message policy used by the check functions.
func (e *Errors) Policy() MessagePolicy {
	if e.policy == nil {
		return DefaultPolicy()
	}
	return e.policy
}

func (e *Errors) Error() string {
	if e.IsEmpty() {
		return "validation failed"
	}

	var parts []string
	for _, field := range e.fields {
		for _, msg := range e.byKey[field] {
			parts = append(parts, field+": "+msg)
		}
	}
	parts = append(parts, e.general...)
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrValidationFailed) true for any sink.
func (e *Errors) Is(target error) bool {
	return target == ErrValidationFailed
}

// Err returns nil when nothing was recorded, otherwise the sink itself.
// It is the usual way to end a pass in a function returning error.
func (e *Errors) Err() error {
	if e.IsEmpty() {
		return nil
	}
	return e
}

type report struct {
	ByKey   map[string][]string `json:"byKey"`
	General []string            `json:"general,omitempty"`
}

// MarshalJSON renders the sink as {"byKey": {...}, "general": [...]}.
// General is omitted when empty.
func (e *Errors) MarshalJSON() ([]byte, error) {
	byKey := e.byKey
	if byKey == nil {
		byKey = map[string][]string{}
	}
	return json.Marshal(report{
		ByKey:   byKey,
		General: e.general,
	})
}

// ExtractErrors returns the sink wrapped in err, or nil.
func ExtractErrors(err error) *Errors {
	if err == nil {
		return nil
	}

	var verrs *Errors
	if errors.As(err, &verrs) {
		return verrs
	}

	return nil
}

func IsValidationError(err error) bool {
	return ExtractErrors(err) != nil
}
