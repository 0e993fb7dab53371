package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/reqcheck/pkg/validator"
)

func TestCheckNotNull(t *testing.T) {
	t.Parallel()

	errs := validator.NewErrors()
	v, ok := validator.CheckNotNull(errs, "id", ptr(42))
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	_, ok = validator.CheckNotNull[int](errs, "missing", nil)
	assert.False(t, ok)
	assert.Equal(t, []string{"must not be null"}, errs.Get("missing"))
	assert.Equal(t, 1, errs.Len())
}

func TestCheckNotBlank(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value *string
		ok    bool
		want  []string
	}{
		{name: "absent", value: nil, want: []string{"must not be null"}},
		{name: "empty", value: ptr(""), want: []string{"must not be blank"}},
		{name: "whitespace", value: ptr(" \t\n"), want: []string{"must not be blank"}},
		{name: "unicode whitespace", value: ptr("\u00a0\u3000"), want: []string{"must not be blank"}},
		{name: "text", value: ptr(" ok "), ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validator.NewErrors()
			v, ok := validator.CheckNotBlank(errs, "field", tt.value)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, errs.Get("field"))
			if tt.value != nil {
				assert.Equal(t, *tt.value, v)
			}
			assert.Equal(t, !tt.ok, validator.IsBlank(tt.value))
		})
	}
}

func TestOptNotBlank(t *testing.T) {
	t.Parallel()

	errs := validator.NewErrors()
	assert.True(t, validator.OptNotBlank(errs, "a", nil))
	assert.True(t, validator.OptNotBlank(errs, "b", ptr("x")))
	assert.False(t, validator.OptNotBlank(errs, "c", ptr("  ")))
	assert.Equal(t, []string{"c"}, errs.Fields())
}

func TestCheckNotEmpty(t *testing.T) {
	t.Parallel()

	t.Run("slices", func(t *testing.T) {
		errs := validator.NewErrors()
		assert.False(t, validator.CheckNotEmpty[string](errs, "nil", nil))
		assert.False(t, validator.CheckNotEmpty(errs, "empty", []string{}))
		assert.True(t, validator.CheckNotEmpty(errs, "full", []string{"a"}))

		assert.Equal(t, []string{"must not be null"}, errs.Get("nil"))
		assert.Equal(t, []string{"must not be empty"}, errs.Get("empty"))
		assert.False(t, errs.Has("full"))
	})

	t.Run("maps", func(t *testing.T) {
		errs := validator.NewErrors()
		assert.False(t, validator.CheckNotEmptyMap[string, int](errs, "nil", nil))
		assert.False(t, validator.CheckNotEmptyMap(errs, "empty", map[string]int{}))
		assert.True(t, validator.CheckNotEmptyMap(errs, "full", map[string]int{"a": 1}))

		assert.Equal(t, []string{"must not be null"}, errs.Get("nil"))
		assert.Equal(t, []string{"must not be empty"}, errs.Get("empty"))
	})
}
