package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/dsdtools/dsd-util/internal/stack"
	"github.com/dsdtools/dsd-util/internal/utils"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded deployments",
	Long:  "Display the deployments this tool has performed, newest first",
	Run:   runHistory,
}

func runHistory(cmd *cobra.Command, args []string) {
	registry, err := stack.NewRegistryManager()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] failed to load registry: %v", err)))
		os.Exit(1)
	}

	if err := registry.Initialize(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] failed to initialize registry: %v", err)))
		os.Exit(1)
	}

	deployments, err := registry.List()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] failed to list deployments: %v", err)))
		os.Exit(1)
	}

	fmt.Println(titleStyle.Render("==> deployment history"))
	fmt.Println()

	if len(deployments) == 0 {
		fmt.Println(dimStyle.Render("  no deployments recorded yet"))
		fmt.Println()
		return
	}

	if historyLimit > 0 && len(deployments) > historyLimit {
		deployments = deployments[:historyLimit]
	}

	for i, deployment := range deployments {
		fmt.Println(labelStyle.Render(fmt.Sprintf("  deployment #%d:", i+1)))
		fmt.Printf("    id: %s\n", valueStyle.Render(utils.TruncateID(deployment.ID, 12)))
		fmt.Printf("    stack: %s\n", valueStyle.Render(deployment.Stack))
		fmt.Printf("    reason: %s\n", valueStyle.Render(string(deployment.Reason)))
		if len(deployment.UpdatedImages) > 0 {
			fmt.Printf("    images: %s\n", dimStyle.Render(strings.Join(deployment.UpdatedImages, ", ")))
		}
		fmt.Printf("    deployed: %s\n", dimStyle.Render(deployment.DeployedAt.Local().Format("2006-01-02 15:04:05")))
		fmt.Println()
	}
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Maximum number of deployments to show")
	rootCmd.AddCommand(historyCmd)
}
