package models

type Config struct {
	Stack  StackConfig  `toml:"stack"`
	Deploy DeployConfig `toml:"deploy"`
	Logs   LogsConfig   `toml:"logs"`
}

type StackConfig struct {
	Name        string `toml:"name"`
	ComposeFile string `toml:"compose_file"`
}

type DeployConfig struct {
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
}

type LogsConfig struct {
	Tail int `toml:"tail"`
}
