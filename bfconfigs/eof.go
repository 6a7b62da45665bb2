package bfconfigs

import (
	"github.com/reusee/bfi/bfvm"
	"github.com/reusee/bfi/cmds"
	"github.com/reusee/bfi/configs"
)

type EOFPolicy bfvm.EOFPolicy

var _ configs.Configurable = EOFPolicy(0)

func (EOFPolicy) ConfigExpr() string {
	return "eof"
}

var eofFlag = cmds.Var[*bfvm.EOFPolicy]("-eof")

func init() {
	cmds.Describe("-eof", "input exhaustion policy: error, zero or keep")
}

func (Module) EOFPolicy(
	loader configs.Loader,
) EOFPolicy {
	if *eofFlag != nil {
		return EOFPolicy(**eofFlag)
	}
	// schema restricts the values
	if str := configs.First[string](loader, "eof"); str != "" {
		policy, err := bfvm.ParseEOFPolicy(str)
		if err != nil {
			panic(err)
		}
		return EOFPolicy(policy)
	}
	return EOFPolicy(bfvm.EOFError)
}
