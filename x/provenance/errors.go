package provenance

import (
	"github.com/iov-one/weave/errors"
)

// x/provenance reserves 1100 ~ 1109.
var (
	ErrGraphFinalized    = errors.Register(1100, "graph finalized")
	ErrInvalidWeight     = errors.Register(1101, "invalid weight")
	ErrWeightCapExceeded = errors.Register(1102, "weight cap exceeded")
	ErrNotAContributor   = errors.Register(1103, "not a contributor")
	ErrAssetDoesNotExist = errors.Register(1104, "asset does not exist")
)
