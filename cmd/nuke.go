package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/dsdtools/dsd-util/internal/stack"
	"github.com/dsdtools/dsd-util/pkg/models"
	"github.com/spf13/cobra"
)

var nukeYes bool

var nukeCmd = &cobra.Command{
	Use:   "nuke",
	Short: "Tear down the stack and redeploy it",
	Long:  "Force-remove every container in the stack and run a fresh deployment",
	Run:   runNuke,
}

func runNuke(cmd *cobra.Command, args []string) {
	cfg := loadStackConfig()

	dockerClient := newDockerClient()
	defer dockerClient.Close()

	containers, err := dockerClient.StackContainers(cfg.Stack.Name)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] %v", err)))
		os.Exit(1)
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("==> nuking stack: %s", cfg.Stack.Name)))
	fmt.Println()

	if !nukeYes {
		fmt.Printf("%s remove %d containers and redeploy? [y/N] ", errorStyle.Render("[!]"), len(containers))
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.TrimSpace(strings.ToLower(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println(dimStyle.Render("  aborted"))
			return
		}
		fmt.Println()
	}

	if len(containers) == 0 {
		fmt.Println(dimStyle.Render("  no containers to remove"))
	}

	for _, ctr := range containers {
		name := dockerClient.ContainerName(ctr.ID)
		fmt.Println(progressStyle.Render(fmt.Sprintf("  --> removing %s...", name)))
		if err := dockerClient.RemoveContainer(ctr.ID); err != nil {
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] %v", err)))
			os.Exit(1)
		}
	}

	fmt.Println()
	fmt.Println(progressStyle.Render("  --> redeploying stack..."))
	fmt.Println()

	deployer := stack.NewDeployer(cfg)
	if err := deployer.Run(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] deployment failed: %v", err)))
		os.Exit(stack.ExitCode(err))
	}

	recordDeployment(cfg.Stack.Name, models.DeployReasonNuke, nil)

	fmt.Println()
	fmt.Println(successStyle.Render(fmt.Sprintf("  [done] stack %s redeployed", cfg.Stack.Name)))
}

func init() {
	nukeCmd.Flags().BoolVarP(&nukeYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(nukeCmd)
}
