package docker

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/pkg/stdcopy"
)

type LogLine struct {
	Container string
	Text      string
}

// StreamLogs reads a container's log stream, demultiplexes stdout/stderr
// and sends each line to out tagged with the container's display name. It
// blocks until the stream ends, so callers fan out one goroutine per
// container.
func (c *Client) StreamLogs(containerID, name string, tail int, follow bool, out chan<- LogLine) error {
	logs, err := c.cli.ContainerLogs(c.ctx, containerID, container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Follow:     follow,
		Tail:       strconv.Itoa(tail),
	})
	if err != nil {
		return fmt.Errorf("failed to get logs for %s: %w", name, err)
	}
	defer logs.Close()

	stdoutPipe, stdoutWriter := io.Pipe()
	stderrPipe, stderrWriter := io.Pipe()

	go func() {
		defer stdoutWriter.Close()
		defer stderrWriter.Close()
		_, err := stdcopy.StdCopy(stdoutWriter, stderrWriter, logs)
		if err != nil && err != io.EOF {
			out <- LogLine{Container: name, Text: fmt.Sprintf("[ERROR] failed to demultiplex logs: %v", err)}
		}
	}()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		scanner := bufio.NewScanner(stdoutPipe)
		for scanner.Scan() {
			out <- LogLine{Container: name, Text: scanner.Text()}
		}
	}()

	scanner := bufio.NewScanner(stderrPipe)
	for scanner.Scan() {
		out <- LogLine{Container: name, Text: scanner.Text()}
	}

	wg.Wait()
	return nil
}
