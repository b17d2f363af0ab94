package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

func TruncateID(id string, length int) string {
	if length < 0 {
		length = 0
	}
	if len(id) <= length {
		return id
	}
	return id[:length]
}

// FormatUptime renders a duration the way `2D 3H 4m` reads, dropping the
// larger units while they are zero.
func FormatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dD %dH %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dH %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

func IsValidStackName(name string) bool {
	if len(name) == 0 {
		return false
	}
	if name[0] == '-' || name[len(name)-1] == '-' {
		return false
	}
	for _, c := range name {
		if !((c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-' || c == '_') {
			return false
		}
	}
	return true
}

// write to temp file first then rename to prevent corruption
func AtomicWriteFile(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)
	tmpFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		tmpFile.Close()
		os.Remove(tmpName)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return err
	}

	if err := tmpFile.Sync(); err != nil {
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		return err
	}

	return os.Rename(tmpName, filename)
}
