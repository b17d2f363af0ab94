package stack

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/dsdtools/dsd-util/pkg/models"
)

// Deployer wraps the external docker-stack-deploy binary; the tool owns
// compose parsing and service rollout, this just runs it and passes the
// output through.
type Deployer struct {
	Command     string
	ExtraArgs   []string
	ComposeFile string
	Stack       string
}

func NewDeployer(cfg *models.Config) *Deployer {
	return &Deployer{
		Command:     cfg.Deploy.Command,
		ExtraArgs:   cfg.Deploy.Args,
		ComposeFile: cfg.Stack.ComposeFile,
		Stack:       cfg.Stack.Name,
	}
}

// CheckBinary verifies the deploy command is on PATH.
func (d *Deployer) CheckBinary() error {
	if _, err := exec.LookPath(d.Command); err != nil {
		return fmt.Errorf("%s not found on PATH - install it before deploying", d.Command)
	}
	return nil
}

// BuildArgs assembles the argument vector passed to the deploy command.
func (d *Deployer) BuildArgs() []string {
	args := []string{"-c", d.ComposeFile}
	args = append(args, d.ExtraArgs...)
	args = append(args, d.Stack)
	return args
}

// Run executes the deploy command with stdout/stderr attached to the
// user's terminal and returns the tool's failure as-is.
func (d *Deployer) Run() error {
	if err := d.CheckBinary(); err != nil {
		return err
	}

	cmd := exec.Command(d.Command, d.BuildArgs()...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", d.Command, err)
	}

	return nil
}

// ExitCode recovers the deploy tool's exit status from a Run error so the
// wrapper can propagate it; 1 when the process never ran.
func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return 1
}
