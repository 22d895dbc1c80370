package handler

import (
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// ConsoleSink writes rendered blocks to a console writer. The stdout
// variant translates ANSI sequences on legacy Windows consoles and
// only enables color when the descriptor is a terminal.
type ConsoleSink struct {
	w     io.Writer
	color bool
}

// NewConsoleSink returns a sink for os.Stdout with color enabled when
// stdout is a terminal.
func NewConsoleSink() *ConsoleSink {
	fd := os.Stdout.Fd()
	return &ConsoleSink{
		w:     colorable.NewColorableStdout(),
		color: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}
}

// NewConsoleSinkWriter returns a sink for an arbitrary writer, used by
// tests and by callers that capture console output.
func NewConsoleSinkWriter(w io.Writer, color bool) *ConsoleSink {
	return &ConsoleSink{w: w, color: color}
}

// ColorEnabled reports whether the sink expects colored input.
func (s *ConsoleSink) ColorEnabled() bool {
	return s.color
}

// Write sends one rendered block to the console.
func (s *ConsoleSink) Write(p []byte) error {
	_, err := s.w.Write(p)
	return err
}

// Close is a no-op; the sink does not own the console descriptor.
func (s *ConsoleSink) Close() error {
	return nil
}
