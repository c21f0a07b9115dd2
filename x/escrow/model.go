package escrow

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Item{}, migration.NoModification)
}

var _ orm.Model = (*Item)(nil)

// Validate ensures the escrow item is valid.
func (i *Item) Validate() error {
	if err := i.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := i.Payer.Validate(); err != nil {
		return errors.Wrap(err, "payer")
	}
	if len(i.AssetID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "asset id")
	}
	if i.Amount == nil || !i.Amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "amount must be positive")
	}
	if err := i.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if err := i.Splitter.Validate(); err != nil {
		return errors.Wrap(err, "splitter")
	}
	if i.ReleaseAt == 0 {
		return errors.Wrap(errors.ErrInput, "release time is required")
	}
	if err := i.ReleaseAt.Validate(); err != nil {
		return errors.Wrap(err, "release time")
	}
	if _, ok := Status_name[int32(i.Status)]; !ok || i.Status == Status_Invalid {
		return errors.Wrapf(ErrInvalidStatus, "status %d", i.Status)
	}
	if err := i.Address.Validate(); err != nil {
		return errors.Wrap(err, "address")
	}
	return nil
}

// Copy makes a deep copy of the item.
func (i *Item) Copy() orm.CloneableData {
	return &Item{
		Metadata:  i.Metadata.Copy(),
		Payer:     i.Payer.Clone(),
		AssetID:   append([]byte(nil), i.AssetID...),
		Amount:    i.Amount.Clone(),
		Splitter:  i.Splitter.Clone(),
		ReleaseAt: i.ReleaseAt,
		Status:    i.Status,
		Address:   i.Address.Clone(),
	}
}

// Condition calculates the custody condition of an escrow item given its
// key.
func Condition(key []byte) weave.Condition {
	return weave.NewCondition("escrow", "item", key)
}

// NewItemBucket returns a bucket for managing escrow items. Items are keyed
// by a sequence value and indexed by payer and asset.
func NewItemBucket() orm.ModelBucket {
	b := orm.NewModelBucket("escrowitem", &Item{},
		orm.WithIDSequence(escrowSeq),
		orm.WithIndex("payer", idxPayer, false),
		orm.WithIndex("asset", idxAsset, false),
	)
	return migration.NewModelBucket("escrow", b)
}

var escrowSeq = orm.NewSequence("escrow", "id")

// RegisterQuery exposes escrow items to queries.
func RegisterQuery(qr weave.QueryRouter) {
	NewItemBucket().Register("escrowitems", qr)
}

func toItem(obj orm.Object) (*Item, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	item, ok := obj.Value().(*Item)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "can only take index of Item, got %T", obj.Value())
	}
	return item, nil
}

func idxPayer(obj orm.Object) ([]byte, error) {
	item, err := toItem(obj)
	if err != nil {
		return nil, err
	}
	return item.Payer, nil
}

func idxAsset(obj orm.Object) ([]byte, error) {
	item, err := toItem(obj)
	if err != nil {
		return nil, err
	}
	return item.AssetID, nil
}
