package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetEnvAsInt tests the getEnvAsInt helper function
func TestGetEnvAsInt(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		os.Unsetenv("TEST_INT_VAR")
		assert.Equal(t, 42, getEnvAsInt("TEST_INT_VAR", 42))
	})

	t.Run("parses valid integer from env var", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "100")
		assert.Equal(t, 100, getEnvAsInt("TEST_INT_VAR", 42))
	})

	t.Run("returns default for invalid integer", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "not-a-number")
		assert.Equal(t, 42, getEnvAsInt("TEST_INT_VAR", 42), "Should return default for invalid integer")
	})

	t.Run("parses negative integers", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "-10")
		assert.Equal(t, -10, getEnvAsInt("TEST_INT_VAR", 42))
	})
}

// TestGetEnvAsDuration tests the getEnvAsDuration helper function
func TestGetEnvAsDuration(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		os.Unsetenv("TEST_DURATION_VAR")
		assert.Equal(t, 5*time.Minute, getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute))
	})

	t.Run("parses seconds", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "120s")
		assert.Equal(t, 120*time.Second, getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute))
	})

	t.Run("parses complex duration", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "1h30m")
		assert.Equal(t, 90*time.Minute, getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute))
	})

	t.Run("returns default for bare number", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "120")
		assert.Equal(t, 5*time.Minute, getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute))
	})
}

func TestGetEnvAsFloat(t *testing.T) {
	t.Setenv("TEST_FLOAT_VAR", "0.75")
	assert.InDelta(t, 0.75, getEnvAsFloat("TEST_FLOAT_VAR", 0.9), 1e-9)

	t.Setenv("TEST_FLOAT_VAR", "most")
	assert.InDelta(t, 0.9, getEnvAsFloat("TEST_FLOAT_VAR", 0.9), 1e-9)
}

func TestParseStaticListings(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		got, err := ParseStaticListings("  ")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("pairs with whitespace", func(t *testing.T) {
		got, err := ParseStaticListings(" 19721:8 ,46747: 10")
		require.NoError(t, err)
		assert.Equal(t, map[int]int{19721: 8, 46747: 10}, got)
	})

	t.Run("bad id", func(t *testing.T) {
		_, err := ParseStaticListings("abc:8")
		assert.Error(t, err)
	})

	t.Run("bad price", func(t *testing.T) {
		_, err := ParseStaticListings("19721:eight")
		assert.Error(t, err)
	})
}
