package stack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dsdtools/dsd-util/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry(t *testing.T) *RegistryManager {
	t.Helper()
	r := NewRegistryManagerWithPath(filepath.Join(t.TempDir(), "deployments.json"))
	require.NoError(t, r.Initialize())
	return r
}

// TestRegistryInitialize verifies an empty registry file is created once
// and not clobbered on a second call.
func TestRegistryInitialize(t *testing.T) {
	r := testRegistry(t)

	deployments, err := r.List()
	require.NoError(t, err)
	assert.Empty(t, deployments)

	_, err = r.Record("web", models.DeployReasonInit, nil)
	require.NoError(t, err)

	require.NoError(t, r.Initialize())

	deployments, err = r.List()
	require.NoError(t, err)
	assert.Len(t, deployments, 1)
}

// TestRegistryRecordAndList verifies records come back newest first with
// generated IDs.
func TestRegistryRecordAndList(t *testing.T) {
	r := testRegistry(t)

	first, err := r.Record("web", models.DeployReasonInit, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.DeployedAt.IsZero())

	second, err := r.Record("web", models.DeployReasonUpdate, []string{"nginx:latest"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	deployments, err := r.List()
	require.NoError(t, err)
	require.Len(t, deployments, 2)

	assert.Equal(t, second.ID, deployments[0].ID)
	assert.Equal(t, models.DeployReasonUpdate, deployments[0].Reason)
	assert.Equal(t, []string{"nginx:latest"}, deployments[0].UpdatedImages)
	assert.Equal(t, first.ID, deployments[1].ID)
}

func TestRegistryListCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deployments.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	r := NewRegistryManagerWithPath(path)

	_, err := r.List()
	require.Error(t, err)
}
