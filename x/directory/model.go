package directory

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Asset{}, migration.NoModification)
	migration.MustRegister(1, &Contributor{}, migration.NoModification)
}

var _ orm.Model = (*Asset)(nil)

// Validate ensures the asset is valid.
func (a *Asset) Validate() error {
	if err := a.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := a.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	return nil
}

// Copy makes a deep copy of the asset.
func (a *Asset) Copy() orm.CloneableData {
	return &Asset{
		Metadata: a.Metadata.Copy(),
		Owner:    a.Owner.Clone(),
	}
}

var _ orm.Model = (*Contributor)(nil)

func (c *Contributor) Validate() error {
	if err := c.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := c.Address.Validate(); err != nil {
		return errors.Wrap(err, "address")
	}
	return nil
}

func (c *Contributor) Copy() orm.CloneableData {
	return &Contributor{
		Metadata: c.Metadata.Copy(),
		Address:  c.Address.Clone(),
		Active:   c.Active,
	}
}

// NewAssetBucket returns a bucket for managing assets. Assets are keyed by
// a sequence value, the first registered asset is 1.
func NewAssetBucket() orm.ModelBucket {
	b := orm.NewModelBucket("asset", &Asset{},
		orm.WithIDSequence(assetSeq),
		orm.WithIndex("owner", ownerIndex, false),
	)
	return migration.NewModelBucket("directory", b)
}

var assetSeq = orm.NewSequence("asset", "id")

func ownerIndex(obj orm.Object) ([]byte, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	a, ok := obj.Value().(*Asset)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "can only take index of Asset, got %T", obj.Value())
	}
	return a.Owner, nil
}

// NewContributorBucket returns a bucket for managing contributors, keyed by
// their address.
func NewContributorBucket() orm.ModelBucket {
	b := orm.NewModelBucket("contrib", &Contributor{})
	return migration.NewModelBucket("directory", b)
}

// RegisterQuery exposes assets and contributors to queries.
func RegisterQuery(qr weave.QueryRouter) {
	NewAssetBucket().Register("assets", qr)
	NewContributorBucket().Register("contributors", qr)
}
