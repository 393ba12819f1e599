package bodytext_test

import (
	"testing"
	"time"

	"github.com/fwojciec/bodytext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts defaults", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, bodytext.DefaultConfig().Validate())
	})

	t.Run("accepts boundary values", func(t *testing.T) {
		t.Parallel()

		cfg := bodytext.Config{
			Timeout:   bodytext.MinTimeout,
			Delay:     0,
			UserAgent: "test",
		}
		require.NoError(t, cfg.Validate())

		cfg.Timeout = bodytext.MaxTimeout
		cfg.Delay = bodytext.MaxDelay
		require.NoError(t, cfg.Validate())
	})

	t.Run("rejects timeout below minimum", func(t *testing.T) {
		t.Parallel()

		cfg := bodytext.DefaultConfig()
		cfg.Timeout = 4 * time.Second

		err := cfg.Validate()
		require.Error(t, err)
		assert.Equal(t, bodytext.EINVALID, bodytext.ErrorCode(err))
	})

	t.Run("rejects timeout above maximum", func(t *testing.T) {
		t.Parallel()

		cfg := bodytext.DefaultConfig()
		cfg.Timeout = 121 * time.Second

		assert.Equal(t, bodytext.EINVALID, bodytext.ErrorCode(cfg.Validate()))
	})

	t.Run("rejects negative delay", func(t *testing.T) {
		t.Parallel()

		cfg := bodytext.DefaultConfig()
		cfg.Delay = -time.Second

		assert.Equal(t, bodytext.EINVALID, bodytext.ErrorCode(cfg.Validate()))
	})

	t.Run("rejects delay above maximum", func(t *testing.T) {
		t.Parallel()

		cfg := bodytext.DefaultConfig()
		cfg.Delay = 6 * time.Second

		assert.Equal(t, bodytext.EINVALID, bodytext.ErrorCode(cfg.Validate()))
	})

	t.Run("rejects empty user agent", func(t *testing.T) {
		t.Parallel()

		cfg := bodytext.DefaultConfig()
		cfg.UserAgent = ""

		assert.Equal(t, bodytext.EINVALID, bodytext.ErrorCode(cfg.Validate()))
	})
}
