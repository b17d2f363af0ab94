package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dsdtools/dsd-util/internal/config"
	"github.com/dsdtools/dsd-util/internal/stack"
	"github.com/dsdtools/dsd-util/internal/utils"
	"github.com/dsdtools/dsd-util/pkg/models"
	"github.com/spf13/cobra"
)

var (
	initName        string
	initComposeFile string
	initNoDeploy    bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a stack and deploy it",
	Long:  "Create a dsd.toml configuration file and run the first deployment",
	Run:   runInit,
}

func runInit(cmd *cobra.Command, args []string) {
	if _, err := os.Stat(config.DefaultFile); err == nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("[error] dsd.toml already exists"))
		fmt.Println(dimStyle.Render("  edit dsd.toml to change the stack configuration"))
		os.Exit(1)
	}

	fmt.Println(titleStyle.Render("==> initializing stack"))
	fmt.Println()

	stackName := initName
	if stackName == "" {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] failed to get current directory: %v", err)))
			os.Exit(1)
		}
		stackName = filepath.Base(cwd)
	}

	if !utils.IsValidStackName(stackName) {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] invalid stack name: %s", stackName)))
		fmt.Println(dimStyle.Render("  use lowercase letters, digits, '-' and '_'"))
		os.Exit(1)
	}

	fmt.Println(progressStyle.Render("  --> writing dsd.toml..."))
	fmt.Printf("    %s %s\n", dimStyle.Render("stack:"), valueStyle.Render(stackName))
	fmt.Printf("    %s %s\n", dimStyle.Render("compose file:"), valueStyle.Render(initComposeFile))
	fmt.Println()

	if err := os.WriteFile(config.DefaultFile, []byte(generateConfig(stackName, initComposeFile)), 0644); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] failed to write dsd.toml: %v", err)))
		os.Exit(1)
	}

	fmt.Println(successStyle.Render("  [done] dsd.toml created"))
	fmt.Println()

	if initNoDeploy {
		fmt.Println(labelStyle.Render("  next steps:"))
		fmt.Printf("    %s\n", dimStyle.Render("1. review dsd.toml"))
		fmt.Printf("    %s\n", dimStyle.Render("2. deploy with: dsd-util update"))
		fmt.Println()
		return
	}

	cfg := &models.Config{
		Stack: models.StackConfig{Name: stackName, ComposeFile: initComposeFile},
	}
	config.ApplyDefaults(cfg)

	fmt.Println(progressStyle.Render("  --> deploying stack..."))
	fmt.Println()

	deployer := stack.NewDeployer(cfg)
	if err := deployer.Run(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] deployment failed: %v", err)))
		os.Exit(stack.ExitCode(err))
	}

	recordDeployment(stackName, models.DeployReasonInit, nil)

	fmt.Println()
	fmt.Println(successStyle.Render(fmt.Sprintf("  [done] stack %s deployed", stackName)))
	fmt.Println()
	fmt.Println(dimStyle.Render("  common commands:"))
	fmt.Printf("    %s\n", dimStyle.Render("dsd-util stats    # resource usage"))
	fmt.Printf("    %s\n", dimStyle.Render("dsd-util logs -f  # follow logs"))
	fmt.Println()
}

func generateConfig(name, composeFile string) string {
	return fmt.Sprintf(`# dsd.toml - dsd-util stack configuration

[stack]
name = "%s"
compose_file = "%s"

[deploy]
command = "%s"
# extra arguments passed to the deploy command
args = []

[logs]
tail = %d
`, name, composeFile, config.DefaultDeployCommand, config.DefaultLogTail)
}

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "Stack name (defaults to directory name)")
	initCmd.Flags().StringVar(&initComposeFile, "compose-file", config.DefaultComposeFile, "Compose file to deploy")
	initCmd.Flags().BoolVar(&initNoDeploy, "no-deploy", false, "Write dsd.toml without deploying")
	rootCmd.AddCommand(initCmd)
}
