package receipt

import (
	"github.com/iov-one/weave/errors"
)

// x/receipt reserves 1120 ~ 1129.
var (
	ErrInvalidSignature   = errors.Register(1120, "invalid signature")
	ErrReceiptExpired     = errors.Register(1121, "receipt expired")
	ErrNonceMismatch      = errors.Register(1122, "nonce mismatch")
	ErrSplitterNotCreated = errors.Register(1123, "splitter not created")
	ErrPaused             = errors.Register(1124, "verification paused")
)
