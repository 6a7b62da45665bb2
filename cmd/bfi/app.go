package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/reusee/bfi/bfcode"
	"github.com/reusee/bfi/cmds"
	"github.com/reusee/bfi/configs"
	"github.com/reusee/bfi/debugs"
	"github.com/reusee/bfi/logs"
	"github.com/reusee/bfi/reports"
	"github.com/reusee/bfi/sessions"
	"github.com/reusee/bfi/sources"
	"github.com/reusee/dscope"
)

const (
	exitOK    = 0
	exitHalt  = 1
	exitUsage = 2
)

var (
	fileFlags   = cmds.Collect[string]("-file")
	exprFlags   = cmds.Collect[string]("-e")
	inputFlag   = cmds.Var[string]("-input")
	reportFlag  = cmds.Var[string]("-report")
	inspectFlag = cmds.Var[string]("-inspect")
	dumpFlag    = cmds.Switch("-dump")
	tapFlag     = cmds.Switch("-tap")
	stripFlag   = cmds.Switch("-strip")
)

func init() {
	cmds.Describe("-file", "run the program at a path, an http(s) url, or - for stdin")
	cmds.Describe("-e", "run the program text")
	cmds.Describe("-input", "read program input from a file instead of stdin")
	cmds.Describe("-report", "write final states to a .json, .yaml or .cbor file")
	cmds.Describe("-inspect", "run a starlark script against each final state")
	cmds.Describe("-dump", "print each final tape to stderr")
	cmds.Describe("-tap", "open a starlark repl on each final state")
	cmds.Describe("-strip", "print the instructions of each program instead of running it")
}

type Module struct {
	dscope.Module
}

type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// withStreams provides streams to the scope. Programs read from stdin come from streams.Stdin.
func withStreams(scope dscope.Scope, streams Streams) dscope.Scope {
	return scope.Fork(
		func() Streams {
			return streams
		},
		func() sources.Stdin {
			return streams.Stdin
		},
	)
}

type flusher interface {
	Flush() error
}

// flushingReader flushes buffered output before each read
type flushingReader struct {
	io.Reader
	out flusher
}

func (f flushingReader) Read(p []byte) (int, error) {
	if err := f.out.Flush(); err != nil {
		return 0, err
	}
	return f.Reader.Read(p)
}

type Options struct {
	Files   []string
	Exprs   []string
	Input   string
	Report  string
	Inspect string
	Dump    bool
	Tap     bool
	Strip   bool
}

func (Module) Options() Options {
	return Options{
		Files:   *fileFlags,
		Exprs:   *exprFlags,
		Input:   *inputFlag,
		Report:  *reportFlag,
		Inspect: *inspectFlag,
		Dump:    *dumpFlag,
		Tap:     *tapFlag,
		Strip:   *stripFlag,
	}
}

type App struct {
	Streams  dscope.Inject[Streams]
	Options  dscope.Inject[Options]
	Loader   dscope.Inject[configs.Loader]
	RunBatch dscope.Inject[sessions.RunBatch]
	Read     dscope.Inject[sources.Read]
	Inspect  dscope.Inject[debugs.Inspect]
	Tap      dscope.Inject[debugs.Tap]
	Logger   dscope.Inject[logs.Logger]
}

func (Module) App(
	inject dscope.InjectStruct,
) (ret App) {
	inject(&ret)
	return
}

func (a App) Main(ctx context.Context) int {
	streams := a.Streams()
	options := a.Options()

	// malformed config files are usage errors
	if _, err := a.Loader().Paths(); err != nil {
		fmt.Fprintf(streams.Stderr, "bfi: config: %v\n", err)
		return exitUsage
	}

	var srcs []sources.Source
	for _, file := range options.Files {
		srcs = append(srcs, sources.Parse(file))
	}
	for _, expr := range options.Exprs {
		srcs = append(srcs, sources.Inline(expr))
	}
	if len(srcs) == 0 {
		fmt.Fprintln(streams.Stderr, "bfi: no program, use -file or -e")
		return exitUsage
	}

	if options.Strip {
		return a.strip(ctx, streams, srcs)
	}

	jobs, closeInputs, err := a.jobs(streams, srcs)
	defer closeInputs()
	if err != nil {
		fmt.Fprintf(streams.Stderr, "bfi: %v\n", err)
		return exitUsage
	}

	a.Logger().DebugContext(ctx, "run",
		"jobs", len(jobs),
	)
	results := a.RunBatch()(ctx, jobs)

	code := exitOK
	var snapshots []reports.Snapshot
	for _, result := range results {
		if len(results) > 1 {
			// single runs are mirrored while running
			if _, err := streams.Stdout.Write(result.Snapshot.Output); err != nil {
				fmt.Fprintf(streams.Stderr, "bfi: %s: write output: %v\n", result.Job.Name, err)
				code = max(code, exitUsage)
			}
		}
		snapshots = append(snapshots, result.Snapshot)

		if result.Err != nil {
			fmt.Fprintf(streams.Stderr, "bfi: %s: %v\n", result.Job.Name, result.Err)
			if result.Halted() {
				code = max(code, exitHalt)
			} else {
				code = max(code, exitUsage)
			}
		}

		if options.Dump {
			reports.RenderTable(streams.Stderr, result.Snapshot)
		}
		if options.Inspect != "" {
			if err := a.Inspect()(ctx, options.Inspect, result.Snapshot, streams.Stderr); err != nil {
				fmt.Fprintf(streams.Stderr, "bfi: %v\n", err)
				code = max(code, exitUsage)
			}
		}
		if options.Tap {
			a.Tap()(ctx, result.Job.Name, debugs.Globals(result.Snapshot))
		}
	}

	if options.Report != "" {
		if err := reports.Write(options.Report, reports.Report{
			Runs: snapshots,
		}); err != nil {
			fmt.Fprintf(streams.Stderr, "bfi: write report: %v\n", err)
			code = max(code, exitUsage)
		}
	}

	return code
}

// jobs makes one job per source. A single job gets stdin as input and stdout as mirror,
// unless the program itself comes from stdin. With -input every job reads the file from its start.
func (a App) jobs(streams Streams, srcs []sources.Source) (jobs []sessions.Job, closeInputs func(), err error) {
	var files []*os.File
	closeInputs = func() {
		for _, f := range files {
			f.Close()
		}
	}

	programFromStdin := false
	for _, src := range srcs {
		if src.Kind == sources.KindStdin {
			programFromStdin = true
		}
	}

	for _, src := range srcs {
		job := sessions.Job{
			Name:    src.String(),
			Sources: []sources.Source{src},
		}
		if src.Kind == sources.KindInline {
			job.Name = fmt.Sprintf("-e#%d", len(jobs))
		}

		switch {
		case a.Options().Input != "":
			f, err := os.Open(a.Options().Input)
			if err != nil {
				return nil, closeInputs, fmt.Errorf("open input: %w", err)
			}
			files = append(files, f)
			job.Input = f
		case len(srcs) == 1 && !programFromStdin:
			job.Input = streams.Stdin
			if out, ok := streams.Stdout.(flusher); ok {
				// prompts show up before waiting for input
				job.Input = flushingReader{
					Reader: streams.Stdin,
					out:    out,
				}
			}
		}

		if len(srcs) == 1 {
			job.Output = streams.Stdout
		}

		jobs = append(jobs, job)
	}

	return jobs, closeInputs, nil
}

func (a App) strip(ctx context.Context, streams Streams, srcs []sources.Source) int {
	for _, src := range srcs {
		program, err := a.Read()(ctx, src)
		if err != nil {
			fmt.Fprintf(streams.Stderr, "bfi: %v\n", err)
			return exitUsage
		}
		if _, err := fmt.Fprintf(streams.Stdout, "%s\n", bfcode.Strip(program)); err != nil {
			fmt.Fprintf(streams.Stderr, "bfi: write output: %v\n", err)
			return exitUsage
		}
	}
	return exitOK
}
