package sessions

import (
	"context"
	"errors"
	"io"

	"github.com/reusee/bfi/bfvm"
	"github.com/reusee/bfi/logs"
	"github.com/reusee/bfi/procs"
	"github.com/reusee/bfi/reports"
	"github.com/reusee/bfi/sources"
	"github.com/reusee/dscope"
)

// Job is one program to run
type Job struct {
	Name    string
	Sources []sources.Source
	// nil means no input
	Input io.Reader
	// output bytes are mirrored here if not nil
	Output io.Writer
}

type Result struct {
	Job      Job
	Machine  *bfvm.Machine
	Snapshot reports.Snapshot
	// a *bfvm.HaltError, or an error preventing the run
	Err error
}

// Halted reports whether the program ran and stopped on a halt error
func (r Result) Halted() bool {
	var halt *bfvm.HaltError
	return errors.As(r.Err, &halt)
}

type state struct {
	ctx     context.Context
	job     Job
	machine *bfvm.Machine
}

type stage = procs.Proc[*state]

type Session struct {
	NewMachine dscope.Inject[NewMachine]
	Read       dscope.Inject[sources.Read]
	NewSpan    dscope.Inject[logs.NewSpan]
	Logger     dscope.Inject[logs.Logger]
}

func (Module) Session(
	inject dscope.InjectStruct,
) (ret Session) {
	inject(&ret)
	return
}

// Run reads, loads and runs one job
func (s Session) Run(ctx context.Context, job Job) (result Result) {
	ctx, _ = s.NewSpan()(ctx, "")
	st := &state{
		ctx: ctx,
		job: job,
	}

	err := procs.Exec[*state](st, procs.Procs[*state]{
		s.create(),
		s.load(),
		s.run(),
	})

	result = Result{
		Job:     job,
		Machine: st.machine,
		Err:     err,
	}
	if st.machine != nil && st.machine.Terminated() {
		result.Snapshot = reports.Take(st.machine)
	} else if err != nil {
		result.Snapshot = reports.Failed(job.Name, err)
	}
	if err != nil {
		s.Logger().DebugContext(ctx, "session failed",
			"job", job.Name,
			"error", logs.WrapSpan(ctx, err),
		)
	}
	return
}

func (s Session) create() stage {
	return procs.Func[*state](func(st *state) (stage, error) {
		options := []bfvm.Option{
			bfvm.WithInput(st.job.Input),
		}
		if st.job.Output != nil {
			options = append(options, bfvm.WithOutput(st.job.Output))
		}
		m, err := s.NewMachine()(st.job.Name, options...)
		if err != nil {
			return nil, err
		}
		st.machine = m
		return nil, nil
	})
}

func (s Session) load() stage {
	return procs.Func[*state](func(st *state) (stage, error) {
		var loads procs.Procs[*state]
		for _, src := range st.job.Sources {
			loads = append(loads, procs.Func[*state](func(st *state) (stage, error) {
				program, err := s.Read()(st.ctx, src)
				if err != nil {
					return nil, err
				}
				return nil, st.machine.Load(program)
			}))
		}
		return loads, nil
	})
}

func (s Session) run() stage {
	return procs.Func[*state](func(st *state) (stage, error) {
		if err := st.machine.Run(st.ctx); err != nil {
			return nil, err
		}
		return nil, nil
	})
}
