// Package audit appends calculation outcomes to a plain-text log file.
//
// The line format is fixed by existing log consumers: a ctime-style
// timestamp, a colon, and the message. Lines are appended with no rotation
// and no locking; interleaved writes from concurrent requests are an
// accepted limitation of the format.
package audit

import (
	"os"
	"time"
)

const _filePerm = 0o644

// Logger -.
type Logger struct {
	file *os.File
}

// New opens (or creates) the log file for appending. An empty path returns a
// no-op logger.
func New(path string) (*Logger, error) {
	if path == "" {
		return &Logger{}, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, _filePerm)
	if err != nil {
		return nil, err
	}

	return &Logger{file: f}, nil
}

// Log appends one timestamped line. Writes are fire-and-forget: a failed
// append never fails the request that triggered it.
func (l *Logger) Log(message string) {
	if l.file == nil {
		return
	}

	line := time.Now().Format(time.ANSIC) + ": " + message + "\n"

	_, _ = l.file.WriteString(line)
}

// Close -.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}

	return l.file.Close()
}
