package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {
	t.Run("Epoch Number", func(t *testing.T) {
		got := ParseTime(float64(1700000000))
		require.NotNil(t, got)
		assert.Equal(t, time.Unix(1700000000, 0), *got)
	})

	t.Run("Epoch String", func(t *testing.T) {
		got := ParseTime("1700000000")
		require.NotNil(t, got)
		assert.Equal(t, time.Unix(1700000000, 0), *got)
	})

	t.Run("Short Date", func(t *testing.T) {
		got := ParseTime("2024-03-01")
		require.NotNil(t, got)
		assert.Equal(t, 2024, got.Year())
		assert.Equal(t, time.March, got.Month())
	})

	t.Run("Full Date Dotted", func(t *testing.T) {
		got := ParseTime("15.08.2024 10:30:00")
		require.NotNil(t, got)
		assert.Equal(t, 15, got.Day())
		assert.Equal(t, 10, got.Hour())
	})

	t.Run("Garbage Degrades To Nil", func(t *testing.T) {
		assert.Nil(t, ParseTime("not a date"))
		assert.Nil(t, ParseTime(""))
		assert.Nil(t, ParseTime(nil))
		assert.Nil(t, ParseTime(float64(0)))
	})
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool(true))
	assert.True(t, ToBool(float64(1)))
	assert.True(t, ToBool("1"))
	assert.True(t, ToBool("true"))
	assert.False(t, ToBool("0"))
	assert.False(t, ToBool(nil))
}

func TestToInt64(t *testing.T) {
	assert.Equal(t, int64(42), ToInt64(float64(42)))
	assert.Equal(t, int64(42), ToInt64("42"))
	assert.Equal(t, int64(0), ToInt64("abc"))
}
