package logging

// The picker owns the terminal for the whole session, so diagnostics
// go to a rotated file instead of stderr. Logging is a nop unless a
// file is configured.

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// New returns a file-backed logger, or a nop logger when path is
// empty. The returned close function flushes buffered entries.
func New(path, level string) (*zap.Logger, func()) {
	if path == "" {
		return zap.NewNop(), func() {}
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	sink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // MB
		MaxBackups: 2,
		MaxAge:     14, // days
	})

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), sink, lvl)
	logger := zap.New(core)
	return logger, func() { _ = logger.Sync() }
}
