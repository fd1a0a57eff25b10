package logx_test

import (
	"os"
	"path/filepath"
	"testing"

	"dolarito-rates/internal/config"
	"dolarito-rates/internal/infrastructure/logx"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "scraper.log")
	cfg := config.Default()
	cfg.LogFile = path
	cfg.LogLevel = "warn"

	l, cleanup, err := logx.New(cfg)
	require.NoError(t, err)
	// the file sink records debug even when the console level is higher
	l.Debug("extract.debug_probe", zap.String("type", "oficial"))
	l.Warn("extract.container_missing", zap.String("type", "mep"))
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "extract.debug_probe")
	require.Contains(t, string(data), "extract.container_missing")
	require.Contains(t, string(data), `"type":"mep"`)
}

func TestNew_NoFile(t *testing.T) {
	cfg := config.Default()
	cfg.LogFile = ""
	l, cleanup, err := logx.New(cfg)
	require.NoError(t, err)
	defer cleanup()
	require.NotNil(t, l)
}

func TestNew_BadLevel(t *testing.T) {
	cfg := config.Default()
	cfg.LogFile = ""
	cfg.LogLevel = "loud"
	_, _, err := logx.New(cfg)
	require.ErrorContains(t, err, "log level")
}

func TestInit_ReplacesGlobal(t *testing.T) {
	before := logx.L()
	cfg := config.Default()
	cfg.LogFile = ""
	l, cleanup, err := logx.Init(cfg)
	require.NoError(t, err)
	defer cleanup()
	require.Same(t, l, logx.L())
	require.NotSame(t, before, logx.L())
}
