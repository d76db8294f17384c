// Package logger builds the structured logger shared by the procuptime CLI.
package logger

import (
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where and how much the logger writes.
type Options struct {
	// LogFile, when set, receives a copy of every entry and is rotated at 10 MB.
	LogFile string
	// Verbose enables V(1) entries.
	Verbose bool
	// Stderr overrides the console destination; defaults to os.Stderr.
	Stderr io.Writer
}

// New returns a logr.Logger backed by zap and a flush function to call before exit.
func New(opts Options) (logr.Logger, func()) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if opts.Verbose {
		// logr V(n) maps to zap level -n.
		level.SetLevel(zapcore.Level(-1))
	}

	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	sinks := []zapcore.WriteSyncer{zapcore.AddSync(stderr)}

	var rotator *lumberjack.Logger
	if opts.LogFile != "" {
		rotator = &lumberjack.Logger{
			Filename:   opts.LogFile,
			MaxSize:    10, // MB
			MaxBackups: 1,
			MaxAge:     0, // ignore age
			Compress:   false,
		}
		sinks = append(sinks, zapcore.AddSync(rotator))
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.NewMultiWriteSyncer(sinks...),
		level,
	)
	z := zap.New(core).Named("procuptime")

	flush := func() {
		_ = z.Sync()
		if rotator != nil {
			_ = rotator.Close()
		}
	}
	return zapr.NewLogger(z), flush
}
