package docker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestIsNewerImageStatus pins the status line the update command keys on.
func TestIsNewerImageStatus(t *testing.T) {
	assert.True(t, IsNewerImageStatus("Status: Downloaded newer image for nginx:latest"))
	assert.False(t, IsNewerImageStatus("Status: Image is up to date for nginx:latest"))
	assert.False(t, IsNewerImageStatus("Pulling from library/nginx"))
	assert.False(t, IsNewerImageStatus(""))
}
