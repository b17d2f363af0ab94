package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dsdtools/dsd-util/internal/utils"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show resource usage for every container in the stack",
	Long:  "Display a one-shot table of cpu, memory, uptime, restart policy, health and ports per container",
	Run:   runStats,
}

func runStats(cmd *cobra.Command, args []string) {
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

	fmt.Println(titleStyle.Render(fmt.Sprintf("==> stats: %s (%d containers)", cfg.Stack.Name, len(containers))))
	fmt.Println()

	rows := [][]string{}
	for _, ctr := range containers {
		summary, err := dockerClient.InspectContainer(ctr.ID)
		if err != nil {
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] %v", err)))
			os.Exit(1)
		}

		cpu := "-"
		memory := "-"
		uptime := "-"
		if summary.State == "running" {
			usage, err := dockerClient.ContainerUsage(ctr.ID)
			if err == nil {
				cpu = usage.FormatCPU()
				memory = usage.FormatMemory()
			}
			uptime = utils.FormatUptime(time.Since(summary.StartedAt))
		}

		stateColor := "10"
		if summary.State != "running" {
			stateColor = "241"
		}
		stateStyled := lipgloss.NewStyle().Foreground(lipgloss.Color(stateColor)).Render(summary.State)

		rows = append(rows, []string{
			summary.Name,
			stateStyled,
			cpu,
			memory,
			uptime,
			summary.RestartPolicy,
			summary.Health,
			summary.Ports,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == 0 {
				return lipgloss.NewStyle().
					Foreground(lipgloss.Color("86")).
					Bold(true).
					Align(lipgloss.Center)
			}
			return lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
		}).
		Headers("container", "state", "cpu", "memory", "uptime", "restart", "health", "ports").
		Rows(rows...)

	fmt.Println(t)
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
