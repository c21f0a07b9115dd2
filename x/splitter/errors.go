package splitter

import (
	"github.com/iov-one/weave/errors"
)

// x/splitter reserves 1110 ~ 1119.
var (
	ErrGraphNotFinalized     = errors.Register(1110, "graph not finalized")
	ErrSplitterAlreadyExists = errors.Register(1111, "splitter already exists")
	ErrNoContributors        = errors.Register(1112, "no contributors")
)
