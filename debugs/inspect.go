package debugs

import (
	"context"
	"fmt"
	"io"

	"github.com/reusee/bfi/logs"
	"github.com/reusee/bfi/reports"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Globals returns the names a script sees for a finished run.
// Tape and output bytes are lists of ints.
func Globals(snapshot reports.Snapshot) map[string]any {
	return map[string]any{
		"name":      snapshot.Name,
		"status":    snapshot.Status,
		"tape":      cells(snapshot.Tape),
		"tape_size": snapshot.TapeSize,
		"pointer":   snapshot.Pointer,
		"output":    cells(snapshot.Output),
		"steps":     snapshot.Steps,
		"halt":      snapshot.Halt,
		"snapshot":  snapshot,
	}
}

func cells(bs []byte) []int {
	ret := make([]int, len(bs))
	for i, b := range bs {
		ret[i] = int(b)
	}
	return ret
}

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

// Inspect runs a starlark script against a finished run, printing to out
type Inspect func(ctx context.Context, script string, snapshot reports.Snapshot, out io.Writer) error

func (Module) Inspect(
	logger logs.Logger,
) Inspect {
	return func(ctx context.Context, script string, snapshot reports.Snapshot, out io.Writer) error {
		globals := make(starlark.StringDict)
		for name, value := range Globals(snapshot) {
			globals[name] = toStarlarkValue(value)
		}
		globals["cell"] = starlark.NewBuiltin("cell", func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var i int
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &i); err != nil {
				return nil, err
			}
			// cells not in the snapshot are zero
			if i < 0 || i >= snapshot.TapeSize {
				return nil, fmt.Errorf("cell %d out of range", i)
			}
			if i >= len(snapshot.Tape) {
				return starlark.MakeInt(0), nil
			}
			return starlark.MakeInt(int(snapshot.Tape[i])), nil
		})

		thread := &starlark.Thread{
			Name: "inspect",
			Print: func(_ *starlark.Thread, msg string) {
				fmt.Fprintln(out, msg)
			},
		}
		done := make(chan struct{})
		defer close(done)
		go func() {
			select {
			case <-ctx.Done():
				thread.Cancel(context.Cause(ctx).Error())
			case <-done:
			}
		}()

		logger.DebugContext(ctx, "inspect", "machine", snapshot.Name)
		if _, err := starlark.ExecFileOptions(fileOptions, thread, "inspect", script, globals); err != nil {
			return fmt.Errorf("inspect %s: %w", snapshot.Name, err)
		}
		return nil
	}
}
