package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessStructFields(t *testing.T) {
	var target struct {
		Nested struct {
			Name     string        `env:"TEST_ENV_NAME"`
			Workers  int           `env:"TEST_ENV_WORKERS"`
			Wait     time.Duration `env:"TEST_ENV_WAIT"`
			Enabled  bool          `env:"TEST_ENV_ENABLED"`
			Untagged string
		}
	}
	target.Nested.Untagged = "kept"

	t.Setenv("TEST_ENV_NAME", "linguacrm")
	t.Setenv("TEST_ENV_WORKERS", "4")
	t.Setenv("TEST_ENV_WAIT", "1m30s")
	t.Setenv("TEST_ENV_ENABLED", "true")

	require.NoError(t, processStructFields(&target))
	assert.Equal(t, "linguacrm", target.Nested.Name)
	assert.Equal(t, 4, target.Nested.Workers)
	assert.Equal(t, 90*time.Second, target.Nested.Wait)
	assert.True(t, target.Nested.Enabled)
	assert.Equal(t, "kept", target.Nested.Untagged)

	t.Setenv("TEST_ENV_WORKERS", "four")
	assert.ErrorContains(t, processStructFields(&target), "invalid integer format")
}

func TestProcessStructFields_Unsupported(t *testing.T) {
	var target struct {
		Ratio float64 `env:"TEST_ENV_RATIO"`
	}
	t.Setenv("TEST_ENV_RATIO", "0.5")
	assert.ErrorContains(t, processStructFields(&target), "unsupported field type")
}
