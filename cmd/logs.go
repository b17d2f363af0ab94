package cmd

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/dsdtools/dsd-util/internal/config"
	"github.com/dsdtools/dsd-util/internal/docker"
	"github.com/spf13/cobra"
)

var (
	followLogs bool
	logsTail   int
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Stream logs from every container in the stack",
	Long:  "Stream logs from all stack containers, each line prefixed with a timestamp and the container name",
	Run:   runLogs,
}

func runLogs(cmd *cobra.Command, args []string) {
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

	tail := logsTail
	if !cmd.Flags().Changed("tail") {
		tail = cfg.Logs.Tail
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("==> logs: %s (%d containers)", cfg.Stack.Name, len(containers))))
	fmt.Println()

	lines := make(chan docker.LogLine, 64)
	var wg sync.WaitGroup

	for _, ctr := range containers {
		name := dockerClient.ContainerName(ctr.ID)
		wg.Add(1)
		go func(id, name string) {
			defer wg.Done()
			if err := dockerClient.StreamLogs(id, name, tail, followLogs, lines); err != nil {
				lines <- docker.LogLine{
					Container: name,
					Text:      errorStyle.Render(fmt.Sprintf("[ERROR] %v", err)),
				}
			}
		}(ctr.ID, name)
	}

	go func() {
		wg.Wait()
		close(lines)
	}()

	for line := range lines {
		timestamp := time.Now().Format("2006-01-02T15:04:05")
		fmt.Printf("[%s | %s] %s\n",
			timestampStyle.Render(timestamp),
			containerStyle.Render(line.Container),
			line.Text)
	}
}

func init() {
	logsCmd.Flags().BoolVarP(&followLogs, "follow", "f", false, "Follow log output")
	logsCmd.Flags().IntVar(&logsTail, "tail", config.DefaultLogTail, "Number of lines to show from the end of each log")
	rootCmd.AddCommand(logsCmd)
}
