package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dsdtools/dsd-util/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dsd.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestLoadAppliesDefaults verifies a minimal file picks up the default
// compose file, deploy command and tail.
func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[stack]
name = "mystack"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "mystack", cfg.Stack.Name)
	assert.Equal(t, DefaultComposeFile, cfg.Stack.ComposeFile)
	assert.Equal(t, DefaultDeployCommand, cfg.Deploy.Command)
	assert.Equal(t, DefaultLogTail, cfg.Logs.Tail)
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
[stack]
name = "web"
compose_file = "compose.prod.yml"

[deploy]
command = "my-deploy"
args = ["--verbose"]

[logs]
tail = 200
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "web", cfg.Stack.Name)
	assert.Equal(t, "compose.prod.yml", cfg.Stack.ComposeFile)
	assert.Equal(t, "my-deploy", cfg.Deploy.Command)
	assert.Equal(t, []string{"--verbose"}, cfg.Deploy.Args)
	assert.Equal(t, 200, cfg.Logs.Tail)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "dsd.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dsd-util init")
}

func TestLoadMissingStackName(t *testing.T) {
	path := writeConfig(t, `
[logs]
tail = 10
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stack.name")
}

func TestLoadInvalidToml(t *testing.T) {
	path := writeConfig(t, `[stack`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &models.Config{
		Stack:  models.StackConfig{Name: "x", ComposeFile: "other.yml"},
		Deploy: models.DeployConfig{Command: "tool"},
		Logs:   models.LogsConfig{Tail: 5},
	}

	ApplyDefaults(cfg)

	assert.Equal(t, "other.yml", cfg.Stack.ComposeFile)
	assert.Equal(t, "tool", cfg.Deploy.Command)
	assert.Equal(t, 5, cfg.Logs.Tail)
}
