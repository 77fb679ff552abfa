package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// FieldApp names the binary in every entry.
	FieldApp = "app"
	// FieldVersion carries the build version.
	FieldVersion = "version"
)

// New builds the application logger. Logs go to stderr so that stdout only
// carries results. fields are attached to every entry.
func New(json bool, debug bool, fields ...zap.Field) (*zap.Logger, error) {
	return build(config(json, debug, "stderr"), fields)
}

// AppFields identifies the running binary. Empty values are dropped.
func AppFields(app, version string) []zap.Field {
	return StringFields(
		StringField{Key: FieldApp, Value: app},
		StringField{Key: FieldVersion, Value: version},
	)
}

func config(json bool, debug bool, output string) zap.Config {
	level := zapcore.InfoLevel
	encoding := "console"

	if json {
		encoding = "json"
	}

	if debug {
		level = zapcore.DebugLevel
	}

	return zap.Config{
		Encoding:          encoding,
		Level:             zap.NewAtomicLevelAt(level),
		DisableStacktrace: !debug,
		OutputPaths:       []string{output},
		ErrorOutputPaths:  []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey: "step",

			LevelKey:    "level",
			EncodeLevel: zapcore.LowercaseLevelEncoder,

			TimeKey:    "time",
			EncodeTime: zapcore.RFC3339TimeEncoder,

			CallerKey:    "caller",
			EncodeCaller: zapcore.ShortCallerEncoder,

			StacktraceKey: "stacktrace",
		},
	}
}

func build(cfg zap.Config, fields []zap.Field) (*zap.Logger, error) {
	var opts []zap.Option
	if len(fields) > 0 {
		opts = append(opts, zap.Fields(fields...))
	}
	return cfg.Build(opts...)
}
