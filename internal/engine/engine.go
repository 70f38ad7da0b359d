package engine

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/vk/devforge/internal/ctxlog"
	"github.com/vk/devforge/internal/derivation"
)

// Engine is the boundary to the external build engine. Everything involved
// in realizing a derivation, from fetching sources to invoking the
// toolchain, happens on the other side of this interface.
type Engine interface {
	Realize(ctx context.Context, drv *derivation.Derivation) error
}

// PrintEngine writes the derivation JSON to a writer for an out-of-process
// engine to consume. It is the default when no builder command is
// configured.
type PrintEngine struct {
	w io.Writer
}

// NewPrintEngine creates a PrintEngine writing to w.
func NewPrintEngine(w io.Writer) *PrintEngine {
	return &PrintEngine{w: w}
}

// Realize emits the serialized derivation.
func (e *PrintEngine) Realize(_ context.Context, drv *derivation.Derivation) error {
	b, err := drv.JSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(e.w, string(b))
	return err
}

// ExecEngine hands the derivation to an external builder command, with the
// serialized derivation on stdin. The command's failure is returned
// verbatim; this layer never inspects or retries a downstream build
// failure.
type ExecEngine struct {
	command string
	args    []string
	outW    io.Writer
	errW    io.Writer
}

// NewExecEngine creates an ExecEngine for the given command line. The
// command string is split on whitespace; the first field is the binary,
// the rest are leading arguments.
func NewExecEngine(command string, outW, errW io.Writer) *ExecEngine {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		panic("engine: builder command must not be empty")
	}
	return &ExecEngine{
		command: fields[0],
		args:    fields[1:],
		outW:    outW,
		errW:    errW,
	}
}

// Realize serializes the derivation and runs the builder command.
func (e *ExecEngine) Realize(ctx context.Context, drv *derivation.Derivation) error {
	logger := ctxlog.FromContext(ctx)

	b, err := drv.JSON()
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, e.command, e.args...)
	cmd.Stdin = bytes.NewReader(b)
	cmd.Stdout = e.outW
	cmd.Stderr = e.errW

	logger.Debug("Handing derivation to external build engine.", "command", e.command, "system", drv.System)
	return cmd.Run()
}
