package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.quill.dev/internal/config"
)

func TestSetupColorFlag(t *testing.T) {
	flags := rootCmd.PersistentFlags()
	require.NoError(t, flags.Set("config", filepath.Join(t.TempDir(), "absent.yaml")))
	t.Cleanup(func() {
		_ = flags.Set("color", "")
		_ = flags.Set("config", config.DefaultPath)
	})

	cases := []struct {
		flag   string
		fail   bool
		expect string
	}{
		{"", false, "auto"},
		{"on", false, "on"},
		{"off", false, "off"},
		{"yes", true, ""},
		{"ON", true, ""},
	}

	for _, c := range cases {
		require.NoError(t, flags.Set("color", c.flag))

		cfg, logger, err := setup(tokenizeCmd)
		if c.fail {
			assert.EqualError(t, err, "--color: invalid color mode: "+c.flag)
			continue
		}

		require.NoError(t, err, c.flag)
		assert.NotNil(t, logger)
		assert.Equal(t, c.expect, cfg.Color)
	}
}

func TestSetupColorFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quill.yaml")
	require.NoError(t, os.WriteFile(path, []byte("color: off\n"), 0o600))

	flags := rootCmd.PersistentFlags()
	require.NoError(t, flags.Set("config", path))
	require.NoError(t, flags.Set("color", "on"))
	t.Cleanup(func() {
		_ = flags.Set("color", "")
		_ = flags.Set("config", config.DefaultPath)
	})

	cfg, _, err := setup(irCmd)
	require.NoError(t, err)
	assert.Equal(t, "on", cfg.Color)
}
