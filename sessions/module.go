package sessions

import (
	"github.com/reusee/bfi/bfconfigs"
	"github.com/reusee/bfi/debugs"
	"github.com/reusee/bfi/sources"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs bfconfigs.Module
	Sources sources.Module
	Debugs  debugs.Module
}
