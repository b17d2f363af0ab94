package cmd

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dsdtools/dsd-util/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRegistry(t *testing.T, deployments []models.Deployment) {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".dsd-util")
	require.NoError(t, os.MkdirAll(dir, 0755))

	data, err := json.Marshal(models.DeploymentRegistry{Deployments: deployments})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "deployments.json"), data, 0644))
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	require.NoError(t, w.Close())
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data)
}

// TestHistoryTruncatesDeploymentID verifies the id column shows a short
// prefix rather than the full 25-char cuid.
func TestHistoryTruncatesDeploymentID(t *testing.T) {
	fullID := "ckabcdefghijklmnopqrstuvw"
	seedRegistry(t, []models.Deployment{{
		ID:         fullID,
		Stack:      "web",
		Reason:     models.DeployReasonInit,
		DeployedAt: time.Now().UTC(),
	}})

	out := captureStdout(t, func() {
		runHistory(historyCmd, nil)
	})

	assert.Contains(t, out, fullID[:12])
	assert.NotContains(t, out, fullID)
	assert.Contains(t, out, "web")
}
