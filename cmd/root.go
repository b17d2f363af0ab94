package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("51"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	progressStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Bold(true)

	timestampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))

	containerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))
)

var rootCmd = &cobra.Command{
	Use:   "dsd-util",
	Short: "a docker-stack-deploy companion for managing compose stacks",
	Long: titleStyle.Render(`
       __         __      __  _ __
  ____/ /________/ /     / /_(_) /
 / __  / ___/ __  /_____/ __/ / /
/ /_/ (__  ) /_/ /_____/ /_/ / /
\__,_/____/\__,_/      \__/_/_/
`) + "\n" + subtitleStyle.Render("docker-stack-deploy utility") + "\n\n" +
		"Init, inspect, restart, update and nuke a compose stack deployed\n" +
		"with docker-stack-deploy.",
	Version: "0.1.0",
}

func SetVersionInfo(v, bt, gc string) {
	version = v
	buildTime = bt
	gitCommit = gc
	rootCmd.Version = fmt.Sprintf("%s (built: %s, commit: %s)", version, buildTime, gitCommit)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] Error: %v", err)))
		os.Exit(1)
	}
}
