package escrow

import (
	"time"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
)

// HoldWindow is the time a payment stays in escrow before it can be
// released. The payer may dispute it until the end of the window.
const HoldWindow = 72 * time.Hour

// BlockNow returns the block time declared in the context. A missing or
// zero block time is a broken setup and is reported as ErrHuman.
func BlockNow(ctx weave.Context) (time.Time, error) {
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "block time")
	}
	return now, nil
}

// isReleasable returns true once the hold window of the item is over.
func isReleasable(now time.Time, i *Item) bool {
	return !now.Before(i.ReleaseAt.Time())
}

// isDisputable returns true while the hold window of the item lasts. The
// last instant of the window still accepts a dispute.
func isDisputable(now time.Time, i *Item) bool {
	return !now.After(i.ReleaseAt.Time())
}
