package bfconfigs

import (
	"github.com/reusee/bfi/cmds"
	"github.com/reusee/bfi/configs"
	"github.com/reusee/bfi/vars"
)

// MaxSteps bounds each run, zero means unlimited
type MaxSteps int

var _ configs.Configurable = MaxSteps(0)

func (MaxSteps) ConfigExpr() string {
	return "max_steps"
}

var maxStepsFlag = cmds.Var[int]("-max-steps")

func init() {
	cmds.Describe("-max-steps", "stop a run after this many steps")
}

func (Module) MaxSteps(
	loader configs.Loader,
) MaxSteps {
	return vars.FirstNonZero(
		MaxSteps(*maxStepsFlag),
		configs.Lookup[MaxSteps](loader),
	)
}
