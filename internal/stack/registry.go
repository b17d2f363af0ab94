package stack

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dsdtools/dsd-util/internal/utils"
	"github.com/dsdtools/dsd-util/pkg/models"
	"github.com/lucsky/cuid"
)

const (
	dsdDir       = ".dsd-util"
	registryFile = "deployments.json"
)

var mu sync.Mutex

// RegistryManager records every deploy this tool performs so `history` can
// answer what happened when.
type RegistryManager struct {
	path string
}

func NewRegistryManager() (*RegistryManager, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	dsdPath := filepath.Join(homeDir, dsdDir)

	if err := os.MkdirAll(dsdPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create dsd-util directory: %w", err)
	}

	return &RegistryManager{
		path: filepath.Join(dsdPath, registryFile),
	}, nil
}

func NewRegistryManagerWithPath(path string) *RegistryManager {
	return &RegistryManager{path: path}
}

func (r *RegistryManager) Initialize() error {
	mu.Lock()
	defer mu.Unlock()

	if _, err := os.Stat(r.path); os.IsNotExist(err) {
		registry := models.DeploymentRegistry{
			Deployments: []models.Deployment{},
		}
		return r.write(&registry)
	}

	return nil
}

func (r *RegistryManager) read() (*models.DeploymentRegistry, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry: %w", err)
	}

	var registry models.DeploymentRegistry
	if err := json.Unmarshal(data, &registry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal registry: %w", err)
	}

	return &registry, nil
}

func (r *RegistryManager) write(registry *models.DeploymentRegistry) error {
	data, err := json.MarshalIndent(registry, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}

	if err := utils.AtomicWriteFile(r.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write registry: %w", err)
	}

	return nil
}

// Record appends a deployment entry and returns it with its generated ID.
func (r *RegistryManager) Record(stack string, reason models.DeployReason, updatedImages []string) (*models.Deployment, error) {
	mu.Lock()
	defer mu.Unlock()

	registry, err := r.read()
	if err != nil {
		return nil, err
	}

	deployment := models.Deployment{
		ID:            cuid.New(),
		Stack:         stack,
		Reason:        reason,
		UpdatedImages: updatedImages,
		DeployedAt:    time.Now().UTC(),
	}

	registry.Deployments = append(registry.Deployments, deployment)

	if err := r.write(registry); err != nil {
		return nil, err
	}

	return &deployment, nil
}

// List returns recorded deployments, newest first.
func (r *RegistryManager) List() ([]models.Deployment, error) {
	mu.Lock()
	defer mu.Unlock()

	registry, err := r.read()
	if err != nil {
		return nil, err
	}

	deployments := make([]models.Deployment, len(registry.Deployments))
	for i, d := range registry.Deployments {
		deployments[len(registry.Deployments)-1-i] = d
	}

	return deployments, nil
}
