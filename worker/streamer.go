package worker

import (
	"strings"

	"github.com/metrolisboa/mlbot-runner/logs"
)

// Relays the worker's stdout/stderr line by line into the loggers.
type logStreamer struct {
	isStdErr bool
	loggers  logs.Loggers
}

func (l *logStreamer) Write(p []byte) (n int, err error) {
	lines := strings.Split(string(p), "\n")
	for i := range lines {
		line := lines[i]
		if line != "" {
			if l.isStdErr {
				l.loggers.LogError(line)
			} else {
				l.loggers.Log(line)
			}
		}
	}
	return len(p), nil
}

func newOutStreamer(loggers logs.Loggers) *logStreamer {
	return &logStreamer{isStdErr: false, loggers: loggers}
}

func newErrStreamer(loggers logs.Loggers) *logStreamer {
	return &logStreamer{isStdErr: true, loggers: loggers}
}
