package bfconfigs

import (
	"runtime"

	"github.com/reusee/bfi/cmds"
	"github.com/reusee/bfi/configs"
	"github.com/reusee/bfi/vars"
)

// Parallel is the number of programs run at the same time
type Parallel int

var _ configs.Configurable = Parallel(0)

func (Parallel) ConfigExpr() string {
	return "parallel"
}

var parallelFlag = cmds.Var[int]("-parallel")

func init() {
	cmds.Describe("-parallel", "number of programs run concurrently")
}

func (Module) Parallel(
	loader configs.Loader,
) Parallel {
	return vars.FirstNonZero(
		Parallel(*parallelFlag),
		configs.Lookup[Parallel](loader),
		Parallel(runtime.NumCPU()),
	)
}
