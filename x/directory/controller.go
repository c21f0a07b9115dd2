package directory

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/orm"
)

// Controller answers the narrow questions other extensions ask about assets
// and contributors. It never modifies the state.
type Controller interface {
	// AssetOwner returns the owner of the asset. ErrNotFound is returned
	// for an unknown asset.
	AssetOwner(db weave.ReadOnlyKVStore, assetID []byte) (weave.Address, error)
	AssetExists(db weave.ReadOnlyKVStore, assetID []byte) (bool, error)
	IsContributor(db weave.ReadOnlyKVStore, addr weave.Address) (bool, error)
}

// NewController returns a controller backed by the directory buckets.
func NewController() *BaseController {
	return &BaseController{
		assets:   NewAssetBucket(),
		contribs: NewContributorBucket(),
	}
}

type BaseController struct {
	assets   orm.ModelBucket
	contribs orm.ModelBucket
}

var _ Controller = (*BaseController)(nil)

func (c *BaseController) AssetOwner(db weave.ReadOnlyKVStore, assetID []byte) (weave.Address, error) {
	var a Asset
	if err := c.assets.One(db, assetID, &a); err != nil {
		return nil, errors.Wrapf(err, "asset %X", assetID)
	}
	return a.Owner, nil
}

func (c *BaseController) AssetExists(db weave.ReadOnlyKVStore, assetID []byte) (bool, error) {
	var a Asset
	switch err := c.assets.One(db, assetID, &a); {
	case err == nil:
		return true, nil
	case errors.ErrNotFound.Is(err):
		return false, nil
	default:
		return false, errors.Wrap(err, "cannot check asset")
	}
}

func (c *BaseController) IsContributor(db weave.ReadOnlyKVStore, addr weave.Address) (bool, error) {
	var ct Contributor
	switch err := c.contribs.One(db, addr, &ct); {
	case err == nil:
		return ct.Active, nil
	case errors.ErrNotFound.Is(err):
		return false, nil
	default:
		return false, errors.Wrap(err, "cannot load contributor")
	}
}
