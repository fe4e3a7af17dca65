package logging

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/khanhnv2901/scorecheck/internal/shared/constants"
)

// FileName is the log file written inside Options.Dir.
const FileName = "scorecheck.log"

// Options configures New.
type Options struct {
	// Dir enables a rotated JSON log file in this directory.
	Dir   string
	Debug bool
	// Console receives human-readable output; nil means stderr.
	Console io.Writer
}

// New builds a logger that writes to the console and, when Dir is set, to a
// rotated JSON file.
func New(opts Options) (*zap.Logger, error) {
	level := zap.InfoLevel
	if opts.Debug {
		level = zap.DebugLevel
	}

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.AddSync(console), level),
	}

	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, constants.DefaultDirPerm); err != nil {
			return nil, err
		}
		w := zapcore.AddSync(&lumberjack.Logger{
			Filename:   filepath.Join(opts.Dir, FileName),
			MaxSize:    10, // MB
			MaxBackups: 5,
			MaxAge:     14, // days
			Compress:   true,
		})
		cfg := zap.NewProductionEncoderConfig()
		cfg.TimeKey = "ts"
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(cfg), w, level))
	}

	return zap.New(zapcore.NewTee(cores...)), nil
}
