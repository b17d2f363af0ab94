package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFormatUptime verifies the day/hour/minute rendering drops leading
// zero units.
func TestFormatUptime(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "0m"},
		{"minutes only", 42 * time.Minute, "42m"},
		{"hours and minutes", 3*time.Hour + 4*time.Minute, "3H 4m"},
		{"days", 49*time.Hour + 5*time.Minute, "2D 1H 5m"},
		{"exact day", 24 * time.Hour, "1D 0H 0m"},
		{"negative clamps to zero", -time.Hour, "0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatUptime(tt.d))
		})
	}
}

func TestTruncateID(t *testing.T) {
	assert.Equal(t, "abcdef", TruncateID("abcdef1234", 6))
	assert.Equal(t, "abc", TruncateID("abc", 12))
	assert.Equal(t, "", TruncateID("abc", -1))
}

func TestIsValidStackName(t *testing.T) {
	valid := []string{"mystack", "my-stack", "stack_2", "a"}
	for _, name := range valid {
		assert.True(t, IsValidStackName(name), name)
	}

	invalid := []string{"", "-stack", "stack-", "My Stack", "stack!", "STACK"}
	for _, name := range invalid {
		assert.False(t, IsValidStackName(name), name)
	}
}

// TestAtomicWriteFile verifies content lands with the right permissions and
// no temp files stay behind.
func TestAtomicWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	require.NoError(t, AtomicWriteFile(path, []byte(`{"ok":true}`), 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestAtomicWriteFileOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	require.NoError(t, AtomicWriteFile(path, []byte("first"), 0644))
	require.NoError(t, AtomicWriteFile(path, []byte("second"), 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}
