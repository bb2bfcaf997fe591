// Package iologger sets up the default slog logger, writing to a log
// file, STDOUT or STDERR.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/weaponstats/wsdb/pkg/config"
	"github.com/weaponstats/wsdb/pkg/logger"
)

// LogFile is the name of the log file inside the log directory.
const LogFile = "wsdb.log"

// Init initializes the global slog logger with the given configuration.
// With "file" destination the log file in logDir is rewritten.
func Init(logDir string, cfg config.LogConfig) error {
	var writer io.Writer

	switch cfg.Destination {
	case "stdout":
		writer = os.Stdout
	case "stderr":
		writer = os.Stderr
	case "file":
		logPath := filepath.Join(logDir, LogFile)
		file, err := os.Create(logPath)
		if err != nil {
			return CreateLogFileError(logPath, err)
		}
		writer = file
	default:
		writer = os.Stderr
	}

	slog.SetDefault(slog.New(logger.NewHandler(writer, cfg)))
	return nil
}
