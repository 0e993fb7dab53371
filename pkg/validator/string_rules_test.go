package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/reqcheck/pkg/validator"
)

func ptr[T any](v T) *T { return &v }

func TestCheckLength(t *testing.T) {
	t.Parallel()

	t.Run("passes within bounds", func(t *testing.T) {
		errs := validator.NewErrors()
		assert.True(t, validator.CheckLength(errs, "name", "project", 3, 24))
		assert.True(t, errs.IsEmpty())
	})

	t.Run("empty string fails the minimum only", func(t *testing.T) {
		errs := validator.NewErrors()
		assert.False(t, validator.CheckLength(errs, "name", "", 3, 24))
		assert.Equal(t, []string{"is shorter than the min allowed length of 3 characters"}, errs.Get("name"))
		assert.Equal(t, 1, errs.Len())
	})

	t.Run("too long fails the maximum only", func(t *testing.T) {
		errs := validator.NewErrors()
		assert.False(t, validator.CheckLength(errs, "description", strings.Repeat("x", 4001), 0, 4000))
		assert.Equal(t, []string{"exceeds the max allowed length of 4000 bytes"}, errs.Get("description"))
	})

	t.Run("multi-byte value fails the byte maximum but not the character minimum", func(t *testing.T) {
		errs := validator.NewErrors()
		s := strings.Repeat("😀", 5) // 5 characters, 20 bytes
		assert.Len(t, s, 20)

		assert.False(t, validator.CheckLength(errs, "title", s, 5, 10))
		assert.Equal(t, []string{"exceeds the max allowed length of 10 bytes"}, errs.Get("title"))
		assert.Equal(t, map[validator.Kind]int{validator.KindAboveMaximum: 1}, errs.Kinds())
	})

	t.Run("both bounds can fire", func(t *testing.T) {
		errs := validator.NewErrors()
		assert.False(t, validator.CheckLength(errs, "code", "ééé", 4, 5))
		assert.Equal(t, []string{
			"is shorter than the min allowed length of 4 characters",
			"exceeds the max allowed length of 5 bytes",
		}, errs.Get("code"))
	})
}

func TestCheckMinMaxLength(t *testing.T) {
	t.Parallel()

	errs := validator.NewErrors()
	assert.True(t, validator.CheckMinLength(errs, "a", "héllo", 5))
	assert.False(t, validator.CheckMinLength(errs, "b", "héllo", 6))
	assert.True(t, validator.CheckMaxLength(errs, "c", "héllo", 6))
	assert.False(t, validator.CheckMaxLength(errs, "d", "héllo", 5))

	assert.Equal(t, []string{"b", "d"}, errs.Fields())
}

func TestOptLength(t *testing.T) {
	t.Parallel()

	t.Run("absent value is valid", func(t *testing.T) {
		errs := validator.NewErrors()
		assert.True(t, validator.OptMinLength(errs, "nick", nil, 3))
		assert.True(t, validator.OptMaxLength(errs, "nick", nil, 3))
		assert.True(t, validator.OptLength(errs, "nick", nil, 3, 10))
		assert.True(t, errs.IsEmpty())
	})

	t.Run("present value is checked", func(t *testing.T) {
		errs := validator.NewErrors()
		assert.False(t, validator.OptMinLength(errs, "nick", ptr("ab"), 3))
		assert.False(t, validator.OptMaxLength(errs, "bio", ptr("abcd"), 3))
		assert.True(t, validator.OptLength(errs, "ok", ptr("abc"), 3, 10))
		assert.Equal(t, []string{"nick", "bio"}, errs.Fields())
	})
}

func TestReqLength(t *testing.T) {
	t.Parallel()

	t.Run("absent value records one null message", func(t *testing.T) {
		errs := validator.NewErrors()
		v, ok := validator.ReqMinLength(errs, "name", nil, 3)
		assert.False(t, ok)
		assert.Empty(t, v)
		assert.Equal(t, []string{"must not be null"}, errs.Get("name"))
	})

	t.Run("absent value skips the bounds", func(t *testing.T) {
		errs := validator.NewErrors()
		_, ok := validator.ReqLength(errs, "name", nil, 3, 24)
		assert.False(t, ok)
		_, ok = validator.ReqMaxLength(errs, "other", nil, 3)
		assert.False(t, ok)
		assert.Equal(t, 2, errs.Len())
		assert.Equal(t, map[validator.Kind]int{validator.KindNull: 2}, errs.Kinds())
	})

	t.Run("present value is returned and checked", func(t *testing.T) {
		errs := validator.NewErrors()
		v, ok := validator.ReqLength(errs, "name", ptr("reqcheck"), 3, 24)
		assert.True(t, ok)
		assert.Equal(t, "reqcheck", v)

		v, ok = validator.ReqMaxLength(errs, "short", ptr("toolong"), 3)
		assert.False(t, ok)
		assert.Equal(t, "toolong", v)
		assert.Equal(t, []string{"exceeds the max allowed length of 3 bytes"}, errs.Get("short"))
	})
}
