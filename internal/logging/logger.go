package logging

import (
	"log/slog"
	"os"
)

// Setup installs the process-wide JSON logger. main swaps the default for a
// MultiHandler once the database handle exists.
func Setup() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}
