package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSubcommandsRegistered verifies every documented subcommand routes to
// its own command.
func TestSubcommandsRegistered(t *testing.T) {
	subcommands := []string{"init", "logs", "nuke", "restart", "stats", "update", "doctor", "history"}

	for _, name := range subcommands {
		t.Run(name, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, cmd.Name())
		})
	}
}

// TestHelpListsSubcommands verifies --help prints usage with every
// subcommand.
func TestHelpListsSubcommands(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"--help"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())

	help := out.String()
	assert.Contains(t, help, "Usage:")
	for _, name := range []string{"init", "logs", "nuke", "restart", "stats", "update"} {
		assert.Contains(t, help, name)
	}
}

// TestUnknownSubcommand verifies an unrecognized subcommand is an error
// rather than a silent no-op.
func TestUnknownSubcommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"bogus"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestVersionInfo(t *testing.T) {
	SetVersionInfo("1.2.3", "2026-01-01", "abc123")
	assert.Equal(t, "1.2.3 (built: 2026-01-01, commit: abc123)", rootCmd.Version)
}
