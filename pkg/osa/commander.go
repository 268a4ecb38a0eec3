package osa

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Commander runs an external command and returns its stdout. It is the
// single seam between this package and the operating system, so tests can
// substitute a fake without spawning processes.
type Commander interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecCommander is the production Commander backed by os/exec.
type ExecCommander struct{}

// Output runs the command and returns stdout. A non-zero exit is a hard
// failure; stderr is folded into the returned error so the underlying
// automation message survives propagation.
func (ExecCommander) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			detail := strings.TrimSpace(string(exitErr.Stderr))
			if detail != "" {
				return nil, fmt.Errorf("%s: %s: %w", name, detail, err)
			}
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}
