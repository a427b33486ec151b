package fclist

import (
	"context"
	"os/exec"
	"time"
)

// listFormat instructs fc-list to emit one pipe-separated record per font.
const listFormat = "%{family}|%{style}|%{file}|%{weight}|%{slant}|%{width}\n"

// DefaultTimeout bounds the wait for the enumeration command.
const DefaultTimeout = 30 * time.Second

// Source produces raw font-list output. It abstracts the fc-list process
// invocation, keeping the parsing stage testable on systems without
// fontconfig.
type Source interface {
	List(ctx context.Context) ([]byte, error)
}

// ExecSource enumerates fonts by running the fontconfig query command.
// The zero value runs "fc-list" from the search path with DefaultTimeout.
type ExecSource struct {
	Command string        // command to run, default "fc-list"
	Timeout time.Duration // wait bound, default DefaultTimeout
}

// List runs the enumeration command and returns its standard output.
// Output captured before a failure exit is returned alongside the error.
func (src ExecSource) List(ctx context.Context) ([]byte, error) {
	command := src.Command
	if command == "" {
		command = "fc-list"
	}
	timeout := src.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, command, "--format", listFormat)
	cmd.Stdin = nil
	cmd.Stderr = nil
	return cmd.Output()
}
