package cmd

import (
	"strconv"
	"testing"

	"github.com/dsdtools/dsd-util/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLogsTailFlagDefault verifies the --tail default tracks the config
// package constant.
func TestLogsTailFlagDefault(t *testing.T) {
	flag := logsCmd.Flags().Lookup("tail")
	require.NotNil(t, flag)

	assert.Equal(t, strconv.Itoa(config.DefaultLogTail), flag.DefValue)
}
