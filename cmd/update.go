package cmd

import (
	"fmt"
	"os"

	"github.com/dsdtools/dsd-util/internal/stack"
	"github.com/dsdtools/dsd-util/pkg/models"
	"github.com/spf13/cobra"
)

var updatePullOnly bool

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Pull newer images and redeploy if anything changed",
	Long:  "Pull the image of every stack container; when a newer image comes down, redeploy the stack",
	Run:   runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) {
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
		fmt.Println(dimStyle.Render("  deploy the stack first with: dsd-util init"))
		os.Exit(1)
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("==> updating stack: %s", cfg.Stack.Name)))
	fmt.Println()

	// pull each image once, even when several containers share it
	seen := map[string]bool{}
	var updatedImages []string

	for _, ctr := range containers {
		summary, err := dockerClient.InspectContainer(ctr.ID)
		if err != nil {
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] %v", err)))
			os.Exit(1)
		}

		if seen[summary.Image] {
			continue
		}
		seen[summary.Image] = true

		fmt.Println(progressStyle.Render(fmt.Sprintf("  --> pulling %s (%s)...", summary.Image, summary.Name)))

		updated, err := dockerClient.PullImage(summary.Image, os.Stdout)
		if err != nil {
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] %v", err)))
			os.Exit(1)
		}

		if updated {
			fmt.Println(successStyle.Render(fmt.Sprintf("    [done] newer image for %s", summary.Image)))
			updatedImages = append(updatedImages, summary.Image)
		} else {
			fmt.Println(dimStyle.Render(fmt.Sprintf("    %s is up to date", summary.Image)))
		}
	}

	fmt.Println()

	if len(updatedImages) == 0 {
		fmt.Println(successStyle.Render("  [done] everything is up to date"))
		return
	}

	if updatePullOnly {
		fmt.Println(labelStyle.Render(fmt.Sprintf("  %d image(s) updated, redeploy skipped", len(updatedImages))))
		fmt.Println(dimStyle.Render("  apply them with: dsd-util nuke"))
		return
	}

	fmt.Println(progressStyle.Render(fmt.Sprintf("  --> %d image(s) updated, redeploying...", len(updatedImages))))
	fmt.Println()

	deployer := stack.NewDeployer(cfg)
	if err := deployer.Run(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] deployment failed: %v", err)))
		os.Exit(stack.ExitCode(err))
	}

	recordDeployment(cfg.Stack.Name, models.DeployReasonUpdate, updatedImages)

	fmt.Println()
	fmt.Println(successStyle.Render(fmt.Sprintf("  [done] stack %s updated", cfg.Stack.Name)))
}

func init() {
	updateCmd.Flags().BoolVar(&updatePullOnly, "pull-only", false, "Pull images without redeploying")
	rootCmd.AddCommand(updateCmd)
}
