package cmd

import (
	"fmt"
	"os"

	"github.com/dsdtools/dsd-util/internal/config"
	"github.com/dsdtools/dsd-util/internal/docker"
	"github.com/dsdtools/dsd-util/internal/stack"
	"github.com/dsdtools/dsd-util/pkg/models"
)

func loadStackConfig() *models.Config {
	cfg, err := config.Load(config.DefaultFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] %v", err)))
		os.Exit(1)
	}
	return cfg
}

func newDockerClient() *docker.Client {
	dockerClient, err := docker.NewClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] failed to connect to container runtime: %v", err)))
		os.Exit(1)
	}
	return dockerClient
}

// history is bookkeeping; a failure to record never fails the operation
// that already succeeded.
func recordDeployment(stackName string, reason models.DeployReason, updatedImages []string) {
	registry, err := stack.NewRegistryManager()
	if err != nil {
		fmt.Fprintln(os.Stderr, dimStyle.Render(fmt.Sprintf("  could not record deployment: %v", err)))
		return
	}

	if err := registry.Initialize(); err != nil {
		fmt.Fprintln(os.Stderr, dimStyle.Render(fmt.Sprintf("  could not record deployment: %v", err)))
		return
	}

	if _, err := registry.Record(stackName, reason, updatedImages); err != nil {
		fmt.Fprintln(os.Stderr, dimStyle.Render(fmt.Sprintf("  could not record deployment: %v", err)))
	}
}
