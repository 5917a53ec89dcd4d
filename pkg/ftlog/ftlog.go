// Package ftlog configures the standard logrus logger. The terminal belongs
// to the UI, so logs go to a file or nowhere.
package ftlog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

var osMkdirAll = os.MkdirAll
var osOpenFile = os.OpenFile

type Options struct {
	// File is the log file path, empty discards all output.
	File string
	// Level is a logrus level name, defaults to info.
	Level   string
	Verbose bool
}

// Setup configures the standard logger and returns a func that closes the
// log file.
func Setup(o Options) (closeFunc func(), err error) {
	closeFunc = func() {}
	logger := log.StandardLogger()
	logger.SetFormatter(&log.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	level := log.InfoLevel
	if o.Level != "" {
		if level, err = log.ParseLevel(o.Level); err != nil {
			level = log.InfoLevel
			err = fmt.Errorf("invalid log level %q: %w", o.Level, err)
		}
	}
	if o.Verbose {
		level = log.DebugLevel
	}
	logger.SetLevel(level)

	if o.File == "" {
		logger.SetOutput(io.Discard)
		return closeFunc, err
	}
	if mkdirErr := osMkdirAll(filepath.Dir(o.File), 0o755); mkdirErr != nil {
		logger.SetOutput(io.Discard)
		return closeFunc, fmt.Errorf("failed to create log dir: %w", mkdirErr)
	}
	f, openErr := osOpenFile(o.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if openErr != nil {
		logger.SetOutput(io.Discard)
		return closeFunc, fmt.Errorf("failed to open log file: %w", openErr)
	}
	logger.SetOutput(f)
	closeFunc = func() {
		logger.SetOutput(io.Discard)
		_ = f.Close()
	}
	return closeFunc, err
}
