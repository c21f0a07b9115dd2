package splitter

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/orm"
)

// Controller gives access to created distributions.
type Controller interface {
	// Distribution returns the distribution of an asset or ErrNotFound.
	Distribution(db weave.ReadOnlyKVStore, assetID []byte) (*Distribution, error)
	Account(assetID []byte) weave.Address
}

// NewController returns a controller backed by the distribution bucket.
func NewController() Controller {
	return &controller{bucket: NewDistributionBucket()}
}

type controller struct {
	bucket orm.ModelBucket
}

func (c *controller) Distribution(db weave.ReadOnlyKVStore, assetID []byte) (*Distribution, error) {
	var d Distribution
	if err := c.bucket.One(db, assetID, &d); err != nil {
		return nil, errors.Wrapf(err, "distribution of asset %X", assetID)
	}
	return &d, nil
}

func (*controller) Account(assetID []byte) weave.Address {
	return Account(assetID)
}
