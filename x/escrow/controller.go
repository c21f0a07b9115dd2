package escrow

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/orm"
	"github.com/tendermint/tendermint/libs/common"
)

// CashController moves coins between accounts.
// Required functionality is implemented by the x/cash extension.
type CashController interface {
	MoveCoins(weave.KVStore, weave.Address, weave.Address, coin.Coin) error
}

// FeePolicy provides the fee taken on every release.
// Required functionality is implemented by the x/feepolicy extension.
type FeePolicy interface {
	CurrentFeeBps(db weave.ReadOnlyKVStore) (int32, error)
	TreasuryDestination(db weave.ReadOnlyKVStore) (weave.Address, error)
}

// Controller manages the escrow item lifecycle and the coins it holds.
type Controller struct {
	cash   CashController
	fees   FeePolicy
	bucket orm.ModelBucket
}

// NewController returns a controller storing items in the escrow item
// bucket.
func NewController(cash CashController, fees FeePolicy) *Controller {
	return &Controller{
		cash:   cash,
		fees:   fees,
		bucket: NewItemBucket(),
	}
}

// Hold moves the amount from the payer to a new escrow item custody account.
// The item is released to the splitter account once the hold window is over.
func (c *Controller) Hold(ctx weave.Context, db weave.KVStore, assetID []byte, payer weave.Address, amount coin.Coin, splitter weave.Address) ([]byte, []common.KVPair, error) {
	now, err := BlockNow(ctx)
	if err != nil {
		return nil, nil, err
	}
	id, err := escrowSeq.NextVal(db)
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot acquire escrow id")
	}
	item := &Item{
		Metadata:  &weave.Metadata{Schema: 1},
		Payer:     payer,
		AssetID:   assetID,
		Amount:    &amount,
		Splitter:  splitter,
		ReleaseAt: weave.AsUnixTime(now).Add(HoldWindow),
		Status:    Status_Held,
		Address:   Condition(id).Address(),
	}
	if err := c.cash.MoveCoins(db, payer, item.Address, amount); err != nil {
		return nil, nil, errors.Wrap(err, "cannot move coins to escrow")
	}
	if _, err := c.bucket.Put(db, id, item); err != nil {
		return nil, nil, errors.Wrap(err, "cannot store escrow item")
	}
	weave.GetLogger(ctx).Info("payment held",
		"escrow", id, "payer", payer, "asset", assetID, "amount", amount.String())
	tags := []common.KVPair{
		{Key: []byte("event"), Value: []byte("payment-held")},
		{Key: []byte("escrow"), Value: id},
		{Key: []byte("asset"), Value: assetID},
		{Key: []byte("payer"), Value: []byte(payer.String())},
		{Key: []byte("amount"), Value: []byte(amount.String())},
		{Key: []byte("release_at"), Value: []byte(item.ReleaseAt.String())},
	}
	return id, tags, nil
}

// Item returns the escrow item with given id or ErrNotFound.
func (c *Controller) Item(db weave.ReadOnlyKVStore, id []byte) (*Item, error) {
	var item Item
	if err := c.bucket.One(db, id, &item); err != nil {
		return nil, errors.Wrapf(err, "escrow item %X", id)
	}
	return &item, nil
}

// settle pays the fee to the treasury and the remainder to the splitter
// account. The item is marked as released.
func (c *Controller) settle(db weave.KVStore, id []byte, item *Item) ([]common.KVPair, error) {
	bps, err := c.fees.CurrentFeeBps(db)
	if err != nil {
		return nil, errors.Wrap(err, "cannot load fee rate")
	}
	treasury, err := c.fees.TreasuryDestination(db)
	if err != nil {
		return nil, errors.Wrap(err, "cannot load treasury")
	}
	fee, remainder, err := SplitFee(*item.Amount, bps)
	if err != nil {
		return nil, err
	}
	if !fee.IsZero() {
		if err := c.cash.MoveCoins(db, item.Address, treasury, fee); err != nil {
			return nil, errors.Wrap(err, "cannot pay fee")
		}
	}
	if !remainder.IsZero() {
		if err := c.cash.MoveCoins(db, item.Address, item.Splitter, remainder); err != nil {
			return nil, errors.Wrap(err, "cannot pay splitter")
		}
	}
	item.Status = Status_Released
	if _, err := c.bucket.Put(db, id, item); err != nil {
		return nil, errors.Wrap(err, "cannot store escrow item")
	}
	return []common.KVPair{
		{Key: []byte("event"), Value: []byte("payment-released")},
		{Key: []byte("escrow"), Value: id},
		{Key: []byte("asset"), Value: item.AssetID},
		{Key: []byte("remainder"), Value: []byte(remainder.String())},
		{Key: []byte("fee"), Value: []byte(fee.String())},
	}, nil
}

// refund returns the whole amount to the payer. The item is marked as
// refunded.
func (c *Controller) refund(db weave.KVStore, id []byte, item *Item) ([]common.KVPair, error) {
	if err := c.cash.MoveCoins(db, item.Address, item.Payer, *item.Amount); err != nil {
		return nil, errors.Wrap(err, "cannot refund payer")
	}
	item.Status = Status_Refunded
	if _, err := c.bucket.Put(db, id, item); err != nil {
		return nil, errors.Wrap(err, "cannot store escrow item")
	}
	return []common.KVPair{
		{Key: []byte("event"), Value: []byte("payment-refunded")},
		{Key: []byte("escrow"), Value: id},
		{Key: []byte("payer"), Value: []byte(item.Payer.String())},
		{Key: []byte("amount"), Value: []byte(item.Amount.String())},
	}, nil
}

// SplitFee returns the fee of given rate, in basis points, taken from the
// amount and what remains after the fee. The fee is rounded down to the
// smallest coin unit, so fee and remainder always sum up to the amount.
func SplitFee(amount coin.Coin, bps int32) (fee, remainder coin.Coin, err error) {
	if bps < 0 || bps > basisPoints {
		return fee, remainder, errors.Wrapf(errors.ErrInput, "fee bps %d", bps)
	}
	one, rest, err := amount.Divide(basisPoints)
	if err != nil {
		return fee, remainder, errors.Wrap(err, "cannot divide amount")
	}
	if fee, err = one.Multiply(int64(bps)); err != nil {
		return fee, remainder, errors.Wrap(err, "cannot multiply fee")
	}
	// rest is below basisPoints of the smallest units and its share of the
	// fee is computed separately, rounding down.
	part, err := rest.Multiply(int64(bps))
	if err != nil {
		return fee, remainder, errors.Wrap(err, "cannot multiply rest")
	}
	partFee, _, err := part.Divide(basisPoints)
	if err != nil {
		return fee, remainder, errors.Wrap(err, "cannot divide rest")
	}
	// Normalize, multiplication can leave a full unit in the fractional part.
	if fee, err = coin.NewCoin(0, 0, amount.Ticker).Add(fee); err != nil {
		return fee, remainder, errors.Wrap(err, "cannot normalize fee")
	}
	if fee, err = fee.Add(partFee); err != nil {
		return fee, remainder, errors.Wrap(err, "cannot sum fee")
	}
	if remainder, err = amount.Subtract(fee); err != nil {
		return fee, remainder, errors.Wrap(err, "cannot compute remainder")
	}
	return fee, remainder, nil
}

const basisPoints = 10000
