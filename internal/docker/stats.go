package docker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-units"
)

type ContainerUsage struct {
	CPUPercent  float64
	MemoryUsage uint64
	MemoryLimit uint64
}

// ContainerUsage takes a single stats sample for a container. The daemon
// fills precpu_stats on non-streaming reads, so one sample is enough for a
// cpu percentage.
func (c *Client) ContainerUsage(containerID string) (*ContainerUsage, error) {
	ctx, cancel := context.WithTimeout(c.ctx, StatsTimeout)
	defer cancel()

	resp, err := c.cli.ContainerStats(ctx, containerID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats for container %s: %w", containerID, err)
	}
	defer resp.Body.Close()

	var stats container.StatsResponse
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, fmt.Errorf("failed to decode stats for container %s: %w", containerID, err)
	}

	return &ContainerUsage{
		CPUPercent:  CalculateCPUPercent(&stats),
		MemoryUsage: CalculateMemoryUsage(&stats),
		MemoryLimit: stats.MemoryStats.Limit,
	}, nil
}

// CalculateCPUPercent mirrors the docker cli calculation: the container's
// cpu delta over the system delta, scaled by the online cpu count.
func CalculateCPUPercent(stats *container.StatsResponse) float64 {
	cpuDelta := float64(stats.CPUStats.CPUUsage.TotalUsage) - float64(stats.PreCPUStats.CPUUsage.TotalUsage)
	systemDelta := float64(stats.CPUStats.SystemUsage) - float64(stats.PreCPUStats.SystemUsage)

	if cpuDelta <= 0 || systemDelta <= 0 {
		return 0
	}

	onlineCPUs := float64(stats.CPUStats.OnlineCPUs)
	if onlineCPUs == 0 {
		onlineCPUs = float64(len(stats.CPUStats.CPUUsage.PercpuUsage))
	}
	if onlineCPUs == 0 {
		onlineCPUs = 1
	}

	return cpuDelta / systemDelta * onlineCPUs * 100.0
}

// CalculateMemoryUsage subtracts the page cache from the raw usage figure,
// cgroup v2 first then the v1 key.
func CalculateMemoryUsage(stats *container.StatsResponse) uint64 {
	usage := stats.MemoryStats.Usage

	if cache, ok := stats.MemoryStats.Stats["inactive_file"]; ok && cache < usage {
		return usage - cache
	}
	if cache, ok := stats.MemoryStats.Stats["total_inactive_file"]; ok && cache < usage {
		return usage - cache
	}

	return usage
}

func (u *ContainerUsage) FormatCPU() string {
	return fmt.Sprintf("%.2f%%", u.CPUPercent)
}

func (u *ContainerUsage) FormatMemory() string {
	return fmt.Sprintf("%s / %s",
		units.BytesSize(float64(u.MemoryUsage)),
		units.BytesSize(float64(u.MemoryLimit)))
}
