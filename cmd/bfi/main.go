package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/reusee/bfi/cmds"
	"github.com/reusee/bfi/modes"
	"github.com/reusee/bfi/sessions"
	"github.com/reusee/dscope"
	"github.com/tebeka/atexit"
)

func main() {
	if err := cmds.Execute(os.Args[1:]); err != nil {
		if errors.Is(err, cmds.ErrHelp) {
			atexit.Exit(exitOK)
		}
		fmt.Fprintf(os.Stderr, "bfi: %v\n", err)
		atexit.Exit(exitUsage)
	}

	stdout := bufio.NewWriter(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	atexit.Register(stop)

	scope := withStreams(
		dscope.New(
			new(sessions.Module),
			new(Module),
			modes.ForProduction(),
		),
		Streams{
			Stdin:  os.Stdin,
			Stdout: stdout,
			Stderr: os.Stderr,
		},
	)

	code := exitOK
	scope.Call(func(
		app App,
	) {
		code = app.Main(ctx)
	})
	if err := stdout.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "bfi: write output: %v\n", err)
		code = max(code, exitUsage)
	}

	atexit.Exit(code)
}
