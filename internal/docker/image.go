package docker

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/docker/docker/api/types/image"
)

type PullProgress struct {
	Status         string `json:"status"`
	ProgressDetail struct {
		Current int64 `json:"current"`
		Total   int64 `json:"total"`
	} `json:"progressDetail"`
	Progress string `json:"progress"`
	ID       string `json:"id"`
}

// IsNewerImageStatus reports whether a pull status line means the registry
// had a newer image than the local cache.
func IsNewerImageStatus(status string) bool {
	return strings.Contains(status, "Downloaded newer image")
}

// PullImage pulls an image and reports whether a newer version came down.
// Status messages are streamed to progressWriter when it is non-nil.
func (c *Client) PullImage(imageName string, progressWriter io.Writer) (bool, error) {
	ctx, cancel := context.WithTimeout(c.ctx, ImagePullTimeout)
	defer cancel()

	reader, err := c.cli.ImagePull(ctx, imageName, image.PullOptions{})
	if err != nil {
		return false, fmt.Errorf("failed to pull image %s: %w", imageName, err)
	}
	defer reader.Close()

	updated := false
	scanner := bufio.NewScanner(reader)
	var lastStatus string

	for scanner.Scan() {
		var progress PullProgress
		if err := json.Unmarshal(scanner.Bytes(), &progress); err != nil {
			continue
		}

		if IsNewerImageStatus(progress.Status) {
			updated = true
		}

		if progress.Status != lastStatus && progress.ID == "" {
			if progressWriter != nil && !strings.Contains(progress.Status, "Digest:") {
				fmt.Fprintf(progressWriter, "    %s\n", progress.Status)
			}
			lastStatus = progress.Status
		}
	}

	if err := scanner.Err(); err != nil {
		return updated, fmt.Errorf("failed to read pull output: %w", err)
	}

	return updated, nil
}
