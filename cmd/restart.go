package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var restartCmd = &cobra.Command{
	Use:   "restart",
	Short: "Restart every container in the stack",
	Run:   runRestart,
}

func runRestart(cmd *cobra.Command, args []string) {
	cfg := loadStackConfig()

	dockerClient := newDockerClient()
	defer dockerClient.Close()

	containers, err := dockerClient.StackContainers(cfg.Stack.Name)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] %v", err)))
		os.Exit(1)
	}

	if len(containers) == 0 {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] no containers found for stack %s", cfg.Stack.Name)))
		os.Exit(1)
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("==> restarting stack: %s", cfg.Stack.Name)))
	fmt.Println()

	for i, ctr := range containers {
		name := dockerClient.ContainerName(ctr.ID)
		fmt.Println(progressStyle.Render(fmt.Sprintf("  --> restarting %s (%d/%d)...", name, i+1, len(containers))))
		if err := dockerClient.RestartContainer(ctr.ID); err != nil {
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] %v", err)))
			os.Exit(1)
		}
	}

	fmt.Println()
	fmt.Println(successStyle.Render(fmt.Sprintf("  [done] %s restarted", cfg.Stack.Name)))
}

func init() {
	rootCmd.AddCommand(restartCmd)
}
