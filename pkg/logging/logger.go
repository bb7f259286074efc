package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// NewLogger creates an hclog logger with the tool's standard settings.
//
// JSON output is selected either by COLOREDSUBS_JSON_LOG=1 or by a level of
// the form "json" / "json:debug". Non-JSON output gets the 🎨 line prefix.
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	jsonFormat := os.Getenv("COLOREDSUBS_JSON_LOG") == "1"
	if rest, ok := strings.CutPrefix(level, "json"); ok {
		jsonFormat = true
		level = strings.TrimPrefix(rest, ":")
		if level == "" {
			level = "info"
		}
	}

	if !jsonFormat {
		output = NewPrefixWriter("🎨 ", output)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z", // UTC ISO format
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// GetLogLevel returns the log level configured via environment.
func GetLogLevel() string {
	level := os.Getenv("COLOREDSUBS_LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	return level
}

// OpenLogOutput returns the log destination: the file named by
// COLOREDSUBS_LOG_PATH when set and writable, stderr otherwise.
func OpenLogOutput() io.Writer {
	if logPath := os.Getenv("COLOREDSUBS_LOG_PATH"); logPath != "" {
		if file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			return file
		}
	}
	return os.Stderr
}
