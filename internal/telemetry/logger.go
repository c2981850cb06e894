// Package telemetry wires the process-wide structured logger. Failures in
// this system are surfaced to the user synchronously, so logging stays
// local: a JSON slog handler on stderr, nothing exported remotely.
package telemetry

import (
	"log/slog"
	"os"
)

// InitLogger installs the global slog logger with a JSON handler.
func InitLogger() {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}
