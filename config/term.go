package config

import (
	"fmt"
	"io"
	"os"
)

// TerminalIO bundles the standard streams vclog reads and writes.
// Changelog output goes to Stdout, diagnostics to Stderr, and the
// interactive config prompt reads Stdin. Tests swap in buffers.
type TerminalIO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultTermIO is the process's real standard streams.
var DefaultTermIO = TerminalIO{
	Stdin:  os.Stdin,
	Stdout: os.Stdout,
	Stderr: os.Stderr,
}

// Printf writes to Stdout with no added newline, for prompts that
// leave the cursor on the line.
func (t *TerminalIO) Printf(msg string, args ...interface{}) {
	fmt.Fprintf(t.Stdout, msg, args...)
}
