package logging

import (
	"bytes"
	"io"
)

// PrefixWriter decorates an io.Writer so that every complete line written
// through it starts with a fixed prefix. Partial lines are buffered until
// their newline arrives.
type PrefixWriter struct {
	prefix  string
	writer  io.Writer
	pending bytes.Buffer
}

// NewPrefixWriter wraps w with the given line prefix.
func NewPrefixWriter(prefix string, w io.Writer) *PrefixWriter {
	return &PrefixWriter{prefix: prefix, writer: w}
}

// Write implements io.Writer.
func (pw *PrefixWriter) Write(p []byte) (int, error) {
	if _, err := pw.pending.Write(p); err != nil {
		return 0, err
	}

	for {
		line, err := pw.pending.ReadBytes('\n')
		if err != nil {
			// Incomplete line: keep it buffered for the next Write.
			if len(line) > 0 {
				if _, wErr := pw.pending.Write(line); wErr != nil {
					return 0, wErr
				}
			}
			break
		}
		if _, err := io.WriteString(pw.writer, pw.prefix); err != nil {
			return 0, err
		}
		if _, err := pw.writer.Write(line); err != nil {
			return 0, err
		}
	}

	return len(p), nil
}
