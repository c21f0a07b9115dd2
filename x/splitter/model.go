package splitter

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Distribution{}, migration.NoModification)
}

var _ orm.Model = (*Distribution)(nil)

func (d *Distribution) Validate() error {
	if err := d.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if len(d.AssetID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "asset id")
	}
	if len(d.Payees) == 0 {
		return errors.Wrap(ErrNoContributors, "payees")
	}
	for i, p := range d.Payees {
		if err := p.Address.Validate(); err != nil {
			return errors.Wrapf(err, "payee #%d address", i)
		}
		if p.Share <= 0 {
			return errors.Wrapf(errors.ErrModel, "payee #%d share must be positive", i)
		}
	}
	if !d.Address.Equals(Account(d.AssetID)) {
		return errors.Wrap(errors.ErrModel, "address does not match the asset splitter account")
	}
	return nil
}

func (d *Distribution) Copy() orm.CloneableData {
	payees := make([]*Payee, len(d.Payees))
	for i, p := range d.Payees {
		payees[i] = &Payee{Address: p.Address.Clone(), Share: p.Share}
	}
	assetID := make([]byte, len(d.AssetID))
	copy(assetID, d.AssetID)
	return &Distribution{
		Metadata: d.Metadata.Copy(),
		AssetID:  assetID,
		Payees:   payees,
		Address:  d.Address.Clone(),
	}
}

// Account returns the address of the splitter account of an asset. The
// account exists whether the distribution was created or not.
func Account(assetID []byte) weave.Address {
	return weave.NewCondition("splitter", "asset", assetID).Address()
}

// NewDistributionBucket returns a bucket for managing distributions, keyed
// by asset id.
func NewDistributionBucket() orm.ModelBucket {
	b := orm.NewModelBucket("distrib", &Distribution{})
	return migration.NewModelBucket("splitter", b)
}

// RegisterQuery will register the distribution bucket as "/distributions".
func RegisterQuery(qr weave.QueryRouter) {
	NewDistributionBucket().Register("distributions", qr)
}
