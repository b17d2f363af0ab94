package cmd

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCheckStackConfigMissingIsAdvisory verifies a missing dsd.toml is a
// pre-init advisory, not a failure: doctor stays green before the first
// init.
func TestCheckStackConfigMissingIsAdvisory(t *testing.T) {
	t.Chdir(t.TempDir())

	out := captureStdout(t, func() {
		assert.True(t, checkStackConfig())
	})

	assert.Contains(t, out, "dsd.toml missing")
	assert.Contains(t, out, "dsd-util init")
}

// TestCheckStackConfigInvalidFails verifies a present but unparseable
// dsd.toml is a hard failure.
func TestCheckStackConfigInvalidFails(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("dsd.toml", []byte("[stack"), 0644))

	out := captureStdout(t, func() {
		assert.False(t, checkStackConfig())
	})

	assert.Contains(t, out, "invalid")
}

// TestCheckStackConfigMissingComposeFileFails verifies a valid config
// pointing at a nonexistent compose file is a hard failure.
func TestCheckStackConfigMissingComposeFileFails(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("dsd.toml", []byte(`
[stack]
name = "web"
compose_file = "compose.yml"
`), 0644))

	out := captureStdout(t, func() {
		assert.False(t, checkStackConfig())
	})

	assert.Contains(t, out, "compose file")
}
