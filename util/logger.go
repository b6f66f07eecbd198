// Package util provides shared helpers: logging, env lookup, purl
// normalization and OSV affected-range matching.
package util

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = InitLogger().Sugar() // package logger for range-matching warnings

// InitLogger sets up the Zap logger to log to the console in a human readable format
func InitLogger() *zap.Logger {
	prodConfig := zap.NewProductionConfig()
	prodConfig.Encoding = "console"
	prodConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	prodConfig.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	l, _ := prodConfig.Build()
	return l
}
