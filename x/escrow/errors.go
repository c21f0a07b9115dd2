package escrow

import (
	"github.com/iov-one/weave/errors"
)

// x/escrow reserves 1130 ~ 1139.
var (
	ErrInvalidStatus       = errors.Register(1130, "invalid status")
	ErrHoldPeriodNotOver   = errors.Register(1131, "hold period not over")
	ErrDisputeWindowClosed = errors.Register(1132, "dispute window closed")
)
