package sources

import (
	"errors"
	"io"
	"os"

	"github.com/reusee/bfi/nets"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Nets nets.Module
}

type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}

var ErrFetch = errors.New("fetch failed")
