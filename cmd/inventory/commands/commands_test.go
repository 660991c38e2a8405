package commands

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInventoryFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "inventory.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
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
	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)
	return buf.String()
}

func setupCommandEnv(t *testing.T) {
	t.Helper()

	viper.Reset()
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("ENABLE_METRICS", "false")
}

func TestLowStockCommandUsesConfiguredThreshold(t *testing.T) {
	setupCommandEnv(t)
	t.Setenv("INVENTORY_LOW_STOCK_THRESHOLD", "4")
	path := writeInventoryFile(t, `{"apple": 3, "banana": 4, "pear": 10}`)

	out := captureStdout(t, func() {
		cmd := NewLowStockCommand()
		cmd.SetArgs([]string{"--file", path})
		require.NoError(t, cmd.Execute())
	})

	assert.Equal(t, "apple\n", out)
}

func TestLowStockCommandFlagOverridesConfiguredThreshold(t *testing.T) {
	setupCommandEnv(t)
	t.Setenv("INVENTORY_LOW_STOCK_THRESHOLD", "100")
	path := writeInventoryFile(t, `{"apple": 3, "banana": 10}`)

	out := captureStdout(t, func() {
		cmd := NewLowStockCommand()
		cmd.SetArgs([]string{"--file", path, "--threshold", "5"})
		require.NoError(t, cmd.Execute())
	})

	assert.Equal(t, "apple\n", out)
}

func TestReportCommand(t *testing.T) {
	setupCommandEnv(t)
	path := writeInventoryFile(t, `{"banana": 12, "apple": 7}`)

	out := captureStdout(t, func() {
		cmd := NewReportCommand()
		cmd.SetArgs([]string{"--file", path})
		require.NoError(t, cmd.Execute())
	})

	assert.Equal(t, "Items Report\napple -> 7\nbanana -> 12\n", out)
}
