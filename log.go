package datagrid

import (
	"io"
	"log/slog"
	"os"
)

// gridLogLevel controls the log level for grid debug logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var gridLogLevel = new(slog.LevelVar)

// gridLogger reports clamps, ignored gestures and committed mutations.
// None of these change observable behavior; they exist for diagnostics.
var gridLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: gridLogLevel}))

// SetVerbose enables or disables verbose/debug logging for the grid.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		gridLogLevel.Set(slog.LevelDebug)
	} else {
		gridLogLevel.Set(slog.LevelInfo)
	}
}

// SetLogOutput redirects grid logs to w, keeping the current level.
// Terminal hosts use it to keep logs off the screen.
func SetLogOutput(w io.Writer) {
	gridLogger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: gridLogLevel}))
}
