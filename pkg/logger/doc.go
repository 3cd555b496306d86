// Package logger builds configured slog.Logger instances for CortexCloud
// services: JSON for production aggregation, text for local development,
// with env-driven level and format selection.
package logger
