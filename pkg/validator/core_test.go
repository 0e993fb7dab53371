package validator_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reqcheck/pkg/validator"
)

func TestErrors_Emptiness(t *testing.T) {
	t.Parallel()

	t.Run("fresh sink is empty", func(t *testing.T) {
		errs := validator.NewErrors()
		assert.True(t, errs.IsEmpty())
		assert.False(t, errs.IsNotEmpty())
		assert.Equal(t, 0, errs.Len())
		assert.NoError(t, errs.Err())
	})

	t.Run("keyed add makes sink non-empty", func(t *testing.T) {
		errs := validator.NewErrors()
		errs.Add("name", "must not be null")
		assert.False(t, errs.IsEmpty())
		assert.True(t, errs.IsNotEmpty())
	})

	t.Run("general add makes sink non-empty", func(t *testing.T) {
		errs := validator.NewErrors()
		errs.AddGeneral("request is malformed")
		assert.False(t, errs.IsEmpty())
		assert.True(t, errs.IsNotEmpty())
		assert.Equal(t, []string{"request is malformed"}, errs.General())
	})

	t.Run("zero value is usable", func(t *testing.T) {
		var errs validator.Errors
		assert.True(t, errs.IsEmpty())
		errs.Add("a", "b")
		assert.True(t, errs.Has("a"))
		assert.Equal(t, validator.EnglishPolicy{}, errs.Policy())
	})
}

func TestErrors_Add(t *testing.T) {
	t.Parallel()

	t.Run("preserves insertion order per location", func(t *testing.T) {
		errs := validator.NewErrors()
		errs.Add("password", "too short")
		errs.Add("password", "missing digit")

		assert.Equal(t, []string{"too short", "missing digit"}, errs.Get("password"))
		assert.Equal(t, 2, errs.Len())
	})

	t.Run("fields keep first-seen order", func(t *testing.T) {
		errs := validator.NewErrors()
		errs.Add("b", "1")
		errs.Add("a", "2")
		errs.Add("b", "3")

		assert.Equal(t, []string{"b", "a"}, errs.Fields())
		assert.Equal(t, map[string][]string{"a": {"2"}, "b": {"1", "3"}}, errs.ByKey())
	})

	t.Run("get returns nil for unknown location", func(t *testing.T) {
		errs := validator.NewErrors()
		assert.Nil(t, errs.Get("missing"))
		assert.False(t, errs.Has("missing"))
	})

	t.Run("returned slices are copies", func(t *testing.T) {
		errs := validator.NewErrors()
		errs.Add("a", "x")
		got := errs.Get("a")
		got[0] = "changed"
		byKey := errs.ByKey()
		byKey["a"][0] = "changed"
		assert.Equal(t, []string{"x"}, errs.Get("a"))
	})
}

func TestErrors_Error(t *testing.T) {
	t.Parallel()

	t.Run("empty sink", func(t *testing.T) {
		assert.Equal(t, "validation failed", validator.NewErrors().Error())
	})

	t.Run("keyed and general messages", func(t *testing.T) {
		errs := validator.NewErrors()
		errs.Add("email", "must not be blank")
		errs.Add("age", "must be greater than or equal to 18")
		errs.AddGeneral("unexpected field")

		assert.Equal(t,
			"validation failed: email: must not be blank; age: must be greater than or equal to 18; unexpected field",
			errs.Error())
	})
}

func TestErrors_Err(t *testing.T) {
	t.Parallel()

	errs := validator.NewErrors()
	errs.Add("name", "must not be null")

	err := fmt.Errorf("create project: %w", errs.Err())
	require.Error(t, err)
	assert.True(t, errors.Is(err, validator.ErrValidationFailed))
	assert.True(t, validator.IsValidationError(err))
	assert.Same(t, errs, validator.ExtractErrors(err))

	assert.Nil(t, validator.ExtractErrors(nil))
	assert.Nil(t, validator.ExtractErrors(errors.New("boom")))
	assert.False(t, validator.IsValidationError(errors.New("boom")))
}

func TestErrors_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("omits empty general", func(t *testing.T) {
		errs := validator.NewErrors()
		errs.Add("name", "must not be null")
		errs.Add("options.fields[1]", "must not be blank")

		data, err := json.Marshal(errs)
		require.NoError(t, err)
		assert.JSONEq(t, `{"byKey":{"name":["must not be null"],"options.fields[1]":["must not be blank"]}}`, string(data))
	})

	t.Run("renders empty byKey as object", func(t *testing.T) {
		var errs validator.Errors
		errs.AddGeneral("boom")

		data, err := json.Marshal(&errs)
		require.NoError(t, err)
		assert.JSONEq(t, `{"byKey":{},"general":["boom"]}`, string(data))
	})
}

func TestErrors_Kinds(t *testing.T) {
	t.Parallel()

	errs := validator.NewErrors()
	validator.CheckNotNull[string](errs, "a", nil)
	validator.CheckNotBlankString(errs, "b", " ")
	validator.CheckInRange(errs, "c", 11, 1, 10)
	validator.CheckMinLength(errs, "d", "", 1)
	errs.Add("e", "custom")

	assert.Equal(t, map[validator.Kind]int{
		validator.KindNull:         1,
		validator.KindBlank:        1,
		validator.KindAboveMaximum: 1,
		validator.KindBelowMinimum: 1,
	}, errs.Kinds())
}
