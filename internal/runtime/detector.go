package runtime

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

type RuntimeType string

const (
	RuntimeDocker RuntimeType = "docker"
	RuntimePodman RuntimeType = "podman"
)

type RuntimeInfo struct {
	Type       RuntimeType
	SocketPath string
	Version    string
}

// DetectRuntime probes for a usable container runtime, preferring whatever
// DOCKER_HOST already points at.
func DetectRuntime() (*RuntimeInfo, error) {
	if dockerHost := os.Getenv("DOCKER_HOST"); dockerHost != "" {
		if strings.Contains(dockerHost, "podman") {
			return detectPodman()
		}
		return detectDocker()
	}

	if info, err := detectDocker(); err == nil {
		return info, nil
	}

	if info, err := detectPodman(); err == nil {
		return info, nil
	}

	return nil, fmt.Errorf("no container runtime detected (tried docker, podman)")
}

func detectDocker() (*RuntimeInfo, error) {
	if _, err := exec.LookPath("docker"); err != nil {
		return nil, fmt.Errorf("docker command not found")
	}

	socketPath := "/var/run/docker.sock"
	if _, err := os.Stat(socketPath); err != nil {
		return nil, fmt.Errorf("docker socket not found at %s", socketPath)
	}

	out, err := exec.Command("docker", "version", "--format", "{{.Server.Version}}").Output()
	if err != nil {
		return nil, fmt.Errorf("failed to get docker version: %w", err)
	}

	return &RuntimeInfo{
		Type:       RuntimeDocker,
		SocketPath: socketPath,
		Version:    strings.TrimSpace(string(out)),
	}, nil
}

func detectPodman() (*RuntimeInfo, error) {
	if _, err := exec.LookPath("podman"); err != nil {
		return nil, fmt.Errorf("podman command not found")
	}

	var socketPath string
	if uid := os.Getuid(); uid != 0 {
		socketPath = fmt.Sprintf("/run/user/%d/podman/podman.sock", uid)
	} else {
		socketPath = "/run/podman/podman.sock"
	}

	if _, err := os.Stat(socketPath); err != nil {
		return nil, fmt.Errorf("podman socket not found at %s", socketPath)
	}

	out, err := exec.Command("podman", "version", "--format", "{{.Server.Version}}").Output()
	if err != nil {
		out, err = exec.Command("podman", "version", "--format", "{{.Client.Version}}").Output()
		if err != nil {
			return nil, fmt.Errorf("failed to get podman version: %w", err)
		}
	}

	return &RuntimeInfo{
		Type:       RuntimePodman,
		SocketPath: socketPath,
		Version:    strings.TrimSpace(string(out)),
	}, nil
}

func (r *RuntimeInfo) GetSocketURI() string {
	return fmt.Sprintf("unix://%s", r.SocketPath)
}
