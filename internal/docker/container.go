package docker

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/containerd/errdefs"
	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/go-connections/nat"
)

// ComposeProjectLabel is how compose-deployed containers are tagged with
// their stack; every stack query filters on it.
const ComposeProjectLabel = "com.docker.compose.project"

type ContainerSummary struct {
	ID            string
	Name          string
	Image         string
	State         string
	RestartPolicy string
	Health        string
	StartedAt     time.Time
	Ports         string
}

// StackContainers lists every container belonging to the named stack,
// stopped ones included.
func (c *Client) StackContainers(stack string) ([]types.Container, error) {
	ctx, cancel := context.WithTimeout(c.ctx, ContainerOpTimeout)
	defer cancel()

	containers, err := c.cli.ContainerList(ctx, container.ListOptions{
		All: true,
		Filters: filters.NewArgs(
			filters.Arg("label", fmt.Sprintf("%s=%s", ComposeProjectLabel, stack)),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list containers for stack %s: %w", stack, err)
	}

	sort.Slice(containers, func(i, j int) bool {
		return containerDisplayName(containers[i]) < containerDisplayName(containers[j])
	})

	return containers, nil
}

func containerDisplayName(ctr types.Container) string {
	if len(ctr.Names) == 0 {
		return ctr.ID
	}
	return strings.TrimPrefix(ctr.Names[0], "/")
}

// ContainerName resolves a container ID to its display name, falling back
// to the ID when the container is gone.
func (c *Client) ContainerName(containerID string) string {
	inspect, err := c.cli.ContainerInspect(c.ctx, containerID)
	if err != nil {
		return containerID
	}
	return strings.TrimPrefix(inspect.Name, "/")
}

func (c *Client) InspectContainer(containerID string) (*ContainerSummary, error) {
	inspect, err := c.cli.ContainerInspect(c.ctx, containerID)
	if err != nil {
		if errdefs.IsNotFound(err) {
			return nil, fmt.Errorf("container %s not found", containerID)
		}
		return nil, fmt.Errorf("failed to inspect container: %w", err)
	}

	summary := &ContainerSummary{
		ID:            inspect.ID,
		Name:          strings.TrimPrefix(inspect.Name, "/"),
		Image:         inspect.Config.Image,
		State:         inspect.State.Status,
		RestartPolicy: string(inspect.HostConfig.RestartPolicy.Name),
		Health:        "none",
	}

	if inspect.State.Health != nil {
		summary.Health = inspect.State.Health.Status
	}

	if started, err := time.Parse(time.RFC3339Nano, inspect.State.StartedAt); err == nil {
		summary.StartedAt = started
	}

	if inspect.NetworkSettings != nil {
		summary.Ports = FormatPorts(inspect.NetworkSettings.Ports)
	}

	return summary, nil
}

// FormatPorts renders a port map the way `docker ps` does, one mapping per
// comma-separated entry, unbound ports as just port/proto.
func FormatPorts(ports nat.PortMap) string {
	if len(ports) == 0 {
		return "-"
	}

	keys := make([]string, 0, len(ports))
	for port := range ports {
		keys = append(keys, string(port))
	}
	sort.Strings(keys)

	var entries []string
	for _, key := range keys {
		port := nat.Port(key)
		bindings := ports[port]
		if len(bindings) == 0 {
			entries = append(entries, string(port))
			continue
		}
		for _, binding := range bindings {
			hostIP := binding.HostIP
			if hostIP == "" {
				hostIP = "0.0.0.0"
			}
			entries = append(entries, fmt.Sprintf("%s:%s->%s", hostIP, binding.HostPort, string(port)))
		}
	}

	return strings.Join(entries, ", ")
}

func (c *Client) RestartContainer(containerID string) error {
	ctx, cancel := context.WithTimeout(c.ctx, ContainerOpTimeout)
	defer cancel()

	timeout := 10
	err := c.cli.ContainerRestart(ctx, containerID, container.StopOptions{
		Timeout: &timeout,
	})
	if err != nil {
		return fmt.Errorf("failed to restart container %s: %w", containerID, err)
	}

	return nil
}

func (c *Client) RemoveContainer(containerID string) error {
	ctx, cancel := context.WithTimeout(c.ctx, ContainerOpTimeout)
	defer cancel()

	err := c.cli.ContainerRemove(ctx, containerID, container.RemoveOptions{
		Force: true,
	})
	if err != nil {
		return fmt.Errorf("failed to remove container: %w", err)
	}

	return nil
}
