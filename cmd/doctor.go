package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/dsdtools/dsd-util/internal/config"
	"github.com/dsdtools/dsd-util/internal/docker"
	"github.com/dsdtools/dsd-util/internal/runtime"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check runtime, deploy tool and stack health",
	Long:  "Verify that the container runtime, docker-stack-deploy and the stack configuration are all usable",
	Run:   runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) {
	fmt.Println(titleStyle.Render("==> checking environment"))
	fmt.Println()

	allGood := true

	allGood = checkRuntime() && allGood
	allGood = checkDeployTool() && allGood
	allGood = checkStackConfig() && allGood

	fmt.Println()
	if allGood {
		fmt.Println(successStyle.Render("  [done] all checks passed"))
	} else {
		fmt.Println(errorStyle.Render("  [error] some checks failed"))
		fmt.Println()
		fmt.Println(dimStyle.Render("  fix the issues above before managing the stack"))
		os.Exit(1)
	}
}

func checkRuntime() bool {
	fmt.Println(labelStyle.Render("  container runtime"))

	info, err := runtime.DetectRuntime()
	if err != nil {
		fmt.Printf("    %s runtime not detected\n", errorStyle.Render("[✗]"))
		fmt.Printf("      %s\n", dimStyle.Render(err.Error()))
		fmt.Printf("      %s\n", dimStyle.Render("install docker or podman to continue"))
		return false
	}

	fmt.Printf("    %s %s detected\n", successStyle.Render("[✓]"), valueStyle.Render(string(info.Type)))
	fmt.Printf("      %s %s\n", dimStyle.Render("version:"), dimStyle.Render(info.Version))
	fmt.Printf("      %s %s\n", dimStyle.Render("socket:"), dimStyle.Render(info.SocketPath))

	dockerClient, err := docker.NewClient()
	if err != nil {
		fmt.Printf("    %s runtime daemon not responding\n", errorStyle.Render("[✗]"))
		fmt.Printf("      %s\n", dimStyle.Render(err.Error()))
		return false
	}
	defer dockerClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := dockerClient.GetClient().Ping(ctx); err != nil {
		fmt.Printf("    %s runtime daemon not responding\n", errorStyle.Render("[✗]"))
		fmt.Printf("      %s\n", dimStyle.Render(err.Error()))
		return false
	}

	fmt.Printf("    %s daemon running\n", successStyle.Render("[✓]"))
	fmt.Println()

	return true
}

func checkDeployTool() bool {
	fmt.Println(labelStyle.Render("  deploy tool"))

	command := config.DefaultDeployCommand
	if cfg, err := config.Load(config.DefaultFile); err == nil {
		command = cfg.Deploy.Command
	}

	path, err := exec.LookPath(command)
	if err != nil {
		fmt.Printf("    %s %s not found on PATH\n", errorStyle.Render("[✗]"), valueStyle.Render(command))
		fmt.Printf("      %s\n", dimStyle.Render("install docker-stack-deploy or set deploy.command in dsd.toml"))
		fmt.Println()
		return false
	}

	fmt.Printf("    %s %s found\n", successStyle.Render("[✓]"), valueStyle.Render(command))
	fmt.Printf("      %s %s\n", dimStyle.Render("path:"), dimStyle.Render(path))
	fmt.Println()

	return true
}

func checkStackConfig() bool {
	fmt.Println(labelStyle.Render("  stack configuration"))

	if _, err := os.Stat(config.DefaultFile); os.IsNotExist(err) {
		fmt.Printf("    %s %s missing\n", errorStyle.Render("[!]"), dimStyle.Render(config.DefaultFile))
		fmt.Printf("      %s\n", dimStyle.Render("create it with: dsd-util init"))
		fmt.Println()
		return true
	}

	cfg, err := config.Load(config.DefaultFile)
	if err != nil {
		fmt.Printf("    %s %s invalid\n", errorStyle.Render("[✗]"), dimStyle.Render(config.DefaultFile))
		fmt.Printf("      %s\n", dimStyle.Render(err.Error()))
		fmt.Println()
		return false
	}

	fmt.Printf("    %s %s valid\n", successStyle.Render("[✓]"), dimStyle.Render(config.DefaultFile))
	fmt.Printf("      %s %s\n", dimStyle.Render("stack:"), dimStyle.Render(cfg.Stack.Name))

	if _, err := os.Stat(cfg.Stack.ComposeFile); err != nil {
		fmt.Printf("    %s compose file %s missing\n", errorStyle.Render("[✗]"), valueStyle.Render(cfg.Stack.ComposeFile))
		fmt.Println()
		return false
	}

	fmt.Printf("    %s compose file %s exists\n", successStyle.Render("[✓]"), dimStyle.Render(cfg.Stack.ComposeFile))

	dockerClient, err := docker.NewClient()
	if err == nil {
		defer dockerClient.Close()
		if containers, err := dockerClient.StackContainers(cfg.Stack.Name); err == nil {
			if len(containers) == 0 {
				fmt.Printf("    %s no containers deployed yet\n", errorStyle.Render("[!]"))
				fmt.Printf("      %s\n", dimStyle.Render("deploy with: dsd-util init"))
			} else {
				fmt.Printf("    %s %d container(s) in stack\n", successStyle.Render("[✓]"), len(containers))
			}
		}
	}

	fmt.Println()
	return true
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
