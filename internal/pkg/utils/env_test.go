package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Run("missing key returns default", func(t *testing.T) {
		assert.Equal(t, "fallback", GetEnvString("HALO_TEST_MISSING_KEY", "fallback"))
		assert.Equal(t, 7, GetEnvInt("HALO_TEST_MISSING_KEY", 7))
	})

	t.Run("parses typed values", func(t *testing.T) {
		t.Setenv("HALO_TEST_INT", "42")
		t.Setenv("HALO_TEST_INT64", "5242880")
		t.Setenv("HALO_TEST_BOOL", "true")
		t.Setenv("HALO_TEST_FLOAT", "3.5")
		t.Setenv("HALO_TEST_DURATION", "90s")

		assert.Equal(t, 42, GetEnvInt("HALO_TEST_INT", 0))
		assert.Equal(t, int64(5242880), GetEnvInt64("HALO_TEST_INT64", 0))
		assert.True(t, GetEnvBool("HALO_TEST_BOOL", false))
		assert.Equal(t, 3.5, GetEnvFloat("HALO_TEST_FLOAT", 0))
		assert.Equal(t, 90*time.Second, GetEnvDuration("HALO_TEST_DURATION", time.Second))
	})

	t.Run("unparsable value falls back", func(t *testing.T) {
		t.Setenv("HALO_TEST_BAD_INT", "forty")
		assert.Equal(t, 10, GetEnvInt("HALO_TEST_BAD_INT", 10), "should use default on parse error")
	})
}
