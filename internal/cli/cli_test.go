package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/LeJamon/ordmap/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	// An unreadable config must not matter for version.
	out, err := execute(t, "version", "--conf", filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Contains(t, out, "ordmap version "+Version)
	assert.Contains(t, out, "Go version:")
}

func TestBenchCommandText(t *testing.T) {
	out, err := execute(t, "bench", "-q", "--sizes", "50,80", "--orders", "asc,zigzag", "--rounds", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "ascending")
	assert.Contains(t, out, "zigzag")
	assert.Contains(t, out, "4 jobs in")
	assert.Contains(t, out, "0 failed")
}

func TestBenchCommandJSON(t *testing.T) {
	out, err := execute(t, "bench", "-q", "--sizes", "64", "--orders", "random", "--rounds", "2", "--format", "json")
	require.NoError(t, err)

	var decoded struct {
		Results []struct {
			Order     string `json:"order"`
			Size      int    `json:"size"`
			Remaining int    `json:"remaining"`
			Valid     bool   `json:"valid"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded.Results, 2)
	for _, res := range decoded.Results {
		assert.Equal(t, "random", res.Order)
		assert.Equal(t, 64, res.Size)
		assert.Equal(t, 32, res.Remaining)
		assert.True(t, res.Valid)
	}
}

func TestBenchCommandRejectsBadFlags(t *testing.T) {
	_, err := execute(t, "bench", "-q", "--orders", "sideways")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid bench options")

	_, err = execute(t, "bench", "-q", "--sizes", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
}

func TestBenchCommandUsesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.DefaultConfigPath())
	content := `
[bench]
sizes = [16]
orders = ["descending"]
rounds = 1
format = "json"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	out, err := execute(t, "bench", "-q", "--conf", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"descending"`)
	assert.NotContains(t, out, `"ascending"`)
}

func TestCheckCommand(t *testing.T) {
	out, err := execute(t, "check", "-q", "--ops", "2000", "--keys", "64", "--seed", "3", "--validate-every", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "OK: 2000 ops")
}

func TestCheckCommandRejectsBadFlags(t *testing.T) {
	_, err := execute(t, "check", "-q", "--ops=0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "operations must be positive")
}

func TestMissingConfigFails(t *testing.T) {
	_, err := execute(t, "check", "--conf", filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file does not exist")
}

func TestNewLogger(t *testing.T) {
	cfg := config.LogConfig{Level: "info", Encoding: "console"}

	logger, err := newLogger(cfg, false, false, false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))

	logger, err = newLogger(cfg, true, false, false)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = newLogger(cfg, true, false, true)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.WarnLevel))
	assert.True(t, logger.Core().Enabled(zapcore.ErrorLevel))

	_, err = newLogger(config.LogConfig{Level: "loud", Encoding: "json"}, false, false, false)
	assert.Error(t, err)
}
