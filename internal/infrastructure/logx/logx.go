package logx

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"dolarito-rates/internal/config"
	infraconfig "dolarito-rates/internal/infrastructure/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	mu     sync.RWMutex
	logger *zap.Logger
)

func init() {
	zapCfg := zap.NewProductionConfig()
	zapCfg.Sampling = nil
	zapCfg.DisableStacktrace = true
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger = zap.Must(zapCfg.Build())
}

// New builds a logger writing to stderr at the configured level and, when
// cfg.LogFile is set, to a rotated JSON file at debug level. The returned
// func flushes and closes the file.
func New(cfg config.Config) (*zap.Logger, func(), error) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if cfg.LogLevel != "" {
		if err := level.UnmarshalText([]byte(strings.ToLower(cfg.LogLevel))); err != nil {
			return nil, func() {}, fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
		}
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), level),
	}

	var file *lumberjack.Logger
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, func() {}, fmt.Errorf("create log dir: %w", err)
		}
		file = &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    infraconfig.DefaultLogMaxSizeMB,
			MaxBackups: infraconfig.DefaultLogMaxBackups,
			MaxAge:     infraconfig.DefaultLogMaxAgeDays,
			Compress:   infraconfig.DefaultLogCompression,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(file), zapcore.DebugLevel))
	}

	l := zap.New(zapcore.NewTee(cores...), zap.AddCaller()).With(zap.String("env", cfg.Env))
	cleanup := func() {
		_ = l.Sync()
		if file != nil {
			_ = file.Close()
		}
	}
	return l, cleanup, nil
}

// Init replaces the package-level logger with one built from cfg.
func Init(cfg config.Config) (*zap.Logger, func(), error) {
	l, cleanup, err := New(cfg)
	if err != nil {
		return nil, cleanup, err
	}
	mu.Lock()
	logger = l
	mu.Unlock()
	return l, cleanup, nil
}

// L returns the package-level logger instance.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}
