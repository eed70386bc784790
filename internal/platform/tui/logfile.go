package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// OpenLogFile creates a logger writing to path, since stderr is hidden
// behind the alternate screen. Parent directories are created; a leading
// ~ expands to the home directory. Call the returned func to close the file.
func OpenLogFile(path string, level log.Level) (*log.Logger, func() error, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("tui: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("tui: cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("tui: cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "shmup",
		Level:           level,
	})
	return logger, f.Close, nil
}
