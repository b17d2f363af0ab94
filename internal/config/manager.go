package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/dsdtools/dsd-util/pkg/models"
)

const DefaultFile = "dsd.toml"

const (
	DefaultComposeFile   = "docker-compose.yml"
	DefaultDeployCommand = "docker-stack-deploy"
	DefaultLogTail       = 50
)

// Load reads a stack configuration and fills in defaults for any key the
// file leaves out. The stack name is the one key with no default.
func Load(path string) (*models.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s not found - run 'dsd-util init' first", path)
	}

	var cfg models.Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if cfg.Stack.Name == "" {
		return nil, fmt.Errorf("stack.name is not set in %s", path)
	}

	return &cfg, nil
}

func ApplyDefaults(cfg *models.Config) {
	if cfg.Stack.ComposeFile == "" {
		cfg.Stack.ComposeFile = DefaultComposeFile
	}
	if cfg.Deploy.Command == "" {
		cfg.Deploy.Command = DefaultDeployCommand
	}
	if cfg.Logs.Tail <= 0 {
		cfg.Logs.Tail = DefaultLogTail
	}
}
