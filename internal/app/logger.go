package app

import (
	"os"

	"github.com/georgemunganga/printa-pos/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger builds the process logger. With file output enabled, JSON lines
// go to a rotating file and console lines to stdout. Every entry carries
// the appid so logs of several tills can share one sink.
func newLogger(cfg config.LogConfig, appid string) (*zap.Logger, error) {
	opts := []zap.Option{zap.AddCaller()}
	if appid != "" {
		opts = append(opts, zap.Fields(zap.String("appid", appid)))
	}

	var zapConfig zap.Config
	if cfg.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.OutputPaths = []string{"stdout"}

	if !cfg.FileEnable {
		return zapConfig.Build(opts...)
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    64,
		MaxBackups: 7,
		MaxAge:     7,
		Compress:   false,
	}
	core := zapcore.NewTee(
		zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(rotator),
			zapConfig.Level,
		),
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.AddSync(os.Stdout),
			zapConfig.Level,
		),
	)
	return zap.New(core, opts...), nil
}
