package sessions

import (
	"github.com/reusee/bfi/bfconfigs"
	"github.com/reusee/bfi/bfvm"
	"github.com/reusee/bfi/logs"
)

// NewMachine creates a configured machine. Options given override the configured ones.
type NewMachine func(name string, options ...bfvm.Option) (*bfvm.Machine, error)

func (Module) NewMachine(
	tapeSize bfconfigs.TapeSize,
	eof bfconfigs.EOFPolicy,
	maxSteps bfconfigs.MaxSteps,
	logger logs.Logger,
) NewMachine {
	return func(name string, options ...bfvm.Option) (*bfvm.Machine, error) {
		return bfvm.New(int(tapeSize), append([]bfvm.Option{
			bfvm.WithName(name),
			bfvm.WithEOFPolicy(bfvm.EOFPolicy(eof)),
			bfvm.WithMaxSteps(int(maxSteps)),
			bfvm.WithLogger(logger),
		}, options...)...)
	}
}
