package bfconfigs

import (
	"github.com/reusee/bfi/cmds"
	"github.com/reusee/bfi/configs"
	"github.com/reusee/bfi/vars"
)

// DefaultTapeSize is the number of cells when nothing is configured
const DefaultTapeSize = 4096

type TapeSize int

var _ configs.Configurable = TapeSize(0)

func (TapeSize) ConfigExpr() string {
	return "tape_size"
}

var tapeSizeFlag = cmds.Var[int]("-tape-size")

func init() {
	cmds.Describe("-tape-size", "number of tape cells")
}

func (Module) TapeSize(
	loader configs.Loader,
) TapeSize {
	return vars.FirstNonZero(
		TapeSize(*tapeSizeFlag),
		configs.Lookup[TapeSize](loader),
		DefaultTapeSize,
	)
}
