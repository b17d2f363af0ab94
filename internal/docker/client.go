package docker

import (
	"context"
	"fmt"
	"os"

	"github.com/docker/docker/client"
	"github.com/dsdtools/dsd-util/internal/runtime"
)

type Client struct {
	cli         *client.Client
	ctx         context.Context
	runtimeInfo *runtime.RuntimeInfo
}

func NewClient() (*Client, error) {
	runtimeInfo, err := runtime.DetectRuntime()
	if err != nil {
		return nil, fmt.Errorf("failed to detect container runtime: %w\nplease install docker or podman", err)
	}

	if os.Getenv("DOCKER_HOST") == "" {
		os.Setenv("DOCKER_HOST", runtimeInfo.GetSocketURI())
	}

	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create container runtime client: %w", err)
	}

	return &Client{
		cli:         cli,
		ctx:         context.Background(),
		runtimeInfo: runtimeInfo,
	}, nil
}

func (c *Client) Close() error {
	return c.cli.Close()
}

func (c *Client) GetClient() *client.Client {
	return c.cli
}

func (c *Client) GetRuntimeInfo() *runtime.RuntimeInfo {
	return c.runtimeInfo
}
