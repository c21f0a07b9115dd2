package escrow

import (
	"context"
	"encoding/binary"
	"testing"
	"time"

	"github.com/attribchain/attrib/x/feepolicy"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
	"github.com/iov-one/weave/x/cash"
)

func TestHandlers(t *testing.T) {
	var (
		payer    = weavetest.NewCondition()
		stranger = weavetest.NewCondition()
		arbiter  = weavetest.NewCondition()
		treasury = weavetest.NewCondition().Address()
		splitter = weavetest.NewCondition().Address()
	)

	heldAt := time.Date(2019, 6, 1, 12, 0, 0, 0, time.UTC)
	releaseAt := heldAt.Add(HoldWindow)

	cashctrl := cash.NewController(cash.NewBucket())
	ctrl := NewController(cashctrl, feepolicy.NewController())
	rt := app.NewRouter()
	auth := &weavetest.CtxAuth{Key: "auth"}
	RegisterRoutes(rt, auth, ctrl)

	cases := map[string]struct {
		actions      []action
		wantAccounts []account
		wantStatus   Status
	}{
		"release after the hold window": {
			actions: []action{
				{conditions: nil, msg: releaseMsg(1), blocktime: releaseAt},
			},
			wantAccounts: []account{
				{address: treasury, coins: coin.Coins{coinp(2, 500000000)}},
				{address: splitter, coins: coin.Coins{coinp(97, 500000000)}},
				{address: Condition(seq(1)).Address(), coins: nil},
			},
			wantStatus: Status_Released,
		},
		"release is allowed once": {
			actions: []action{
				{msg: releaseMsg(1), blocktime: releaseAt},
				{
					msg:            releaseMsg(1),
					blocktime:      releaseAt.Add(time.Hour),
					wantCheckErr:   ErrInvalidStatus,
					wantDeliverErr: ErrInvalidStatus,
				},
			},
			wantAccounts: []account{
				{address: splitter, coins: coin.Coins{coinp(97, 500000000)}},
			},
			wantStatus: Status_Released,
		},
		"release before the end of the hold window": {
			actions: []action{
				{
					msg:            releaseMsg(1),
					blocktime:      releaseAt.Add(-time.Second),
					wantCheckErr:   ErrHoldPeriodNotOver,
					wantDeliverErr: ErrHoldPeriodNotOver,
				},
			},
			wantAccounts: []account{
				{address: Condition(seq(1)).Address(), coins: coin.Coins{coinp(100, 0)}},
			},
			wantStatus: Status_Held,
		},
		"release of an unknown item": {
			actions: []action{
				{
					msg:            releaseMsg(2),
					blocktime:      releaseAt,
					wantCheckErr:   errors.ErrNotFound,
					wantDeliverErr: errors.ErrNotFound,
				},
			},
			wantStatus: Status_Held,
		},
		"dispute until the end of the hold window": {
			actions: []action{
				{
					conditions: []weave.Condition{payer},
					msg:        disputeMsg(1),
					blocktime:  releaseAt,
				},
				{
					msg:            releaseMsg(1),
					blocktime:      releaseAt.Add(time.Hour),
					wantCheckErr:   ErrInvalidStatus,
					wantDeliverErr: ErrInvalidStatus,
				},
			},
			wantStatus: Status_Disputed,
		},
		"dispute after the hold window": {
			actions: []action{
				{
					conditions:     []weave.Condition{payer},
					msg:            disputeMsg(1),
					blocktime:      releaseAt.Add(time.Second),
					wantCheckErr:   ErrDisputeWindowClosed,
					wantDeliverErr: ErrDisputeWindowClosed,
				},
			},
			wantStatus: Status_Held,
		},
		"dispute by someone else than the payer": {
			actions: []action{
				{
					conditions:     []weave.Condition{stranger},
					msg:            disputeMsg(1),
					blocktime:      heldAt,
					wantCheckErr:   errors.ErrUnauthorized,
					wantDeliverErr: errors.ErrUnauthorized,
				},
			},
			wantStatus: Status_Held,
		},
		"dispute of a released item": {
			actions: []action{
				{msg: releaseMsg(1), blocktime: releaseAt},
				{
					conditions:     []weave.Condition{payer},
					msg:            disputeMsg(1),
					blocktime:      releaseAt,
					wantCheckErr:   ErrInvalidStatus,
					wantDeliverErr: ErrInvalidStatus,
				},
			},
			wantStatus: Status_Released,
		},
		"arbiter refunds a disputed item": {
			actions: []action{
				{conditions: []weave.Condition{payer}, msg: disputeMsg(1), blocktime: heldAt},
				{conditions: []weave.Condition{arbiter}, msg: resolveMsg(1, true), blocktime: heldAt},
			},
			wantAccounts: []account{
				{address: payer.Address(), coins: coin.Coins{coinp(100, 0)}},
				{address: treasury, coins: nil},
				{address: splitter, coins: nil},
			},
			wantStatus: Status_Refunded,
		},
		"arbiter releases a disputed item": {
			actions: []action{
				{conditions: []weave.Condition{payer}, msg: disputeMsg(1), blocktime: heldAt},
				{conditions: []weave.Condition{arbiter}, msg: resolveMsg(1, false), blocktime: heldAt},
			},
			wantAccounts: []account{
				{address: payer.Address(), coins: nil},
				{address: treasury, coins: coin.Coins{coinp(2, 500000000)}},
				{address: splitter, coins: coin.Coins{coinp(97, 500000000)}},
			},
			wantStatus: Status_Released,
		},
		"refunded item is final": {
			actions: []action{
				{conditions: []weave.Condition{payer}, msg: disputeMsg(1), blocktime: heldAt},
				{conditions: []weave.Condition{arbiter}, msg: resolveMsg(1, true), blocktime: heldAt},
				{
					conditions:     []weave.Condition{arbiter},
					msg:            resolveMsg(1, false),
					blocktime:      heldAt,
					wantCheckErr:   ErrInvalidStatus,
					wantDeliverErr: ErrInvalidStatus,
				},
				{
					msg:            releaseMsg(1),
					blocktime:      releaseAt,
					wantCheckErr:   ErrInvalidStatus,
					wantDeliverErr: ErrInvalidStatus,
				},
				{
					conditions:     []weave.Condition{payer},
					msg:            disputeMsg(1),
					blocktime:      heldAt,
					wantCheckErr:   ErrInvalidStatus,
					wantDeliverErr: ErrInvalidStatus,
				},
			},
			wantAccounts: []account{
				{address: payer.Address(), coins: coin.Coins{coinp(100, 0)}},
				{address: treasury, coins: nil},
				{address: splitter, coins: nil},
			},
			wantStatus: Status_Refunded,
		},
		"item released by an arbiter is final": {
			actions: []action{
				{conditions: []weave.Condition{payer}, msg: disputeMsg(1), blocktime: heldAt},
				{conditions: []weave.Condition{arbiter}, msg: resolveMsg(1, false), blocktime: heldAt},
				{
					conditions:     []weave.Condition{arbiter},
					msg:            resolveMsg(1, true),
					blocktime:      heldAt,
					wantCheckErr:   ErrInvalidStatus,
					wantDeliverErr: ErrInvalidStatus,
				},
				{
					msg:            releaseMsg(1),
					blocktime:      releaseAt,
					wantCheckErr:   ErrInvalidStatus,
					wantDeliverErr: ErrInvalidStatus,
				},
				{
					conditions:     []weave.Condition{payer},
					msg:            disputeMsg(1),
					blocktime:      heldAt,
					wantCheckErr:   ErrInvalidStatus,
					wantDeliverErr: ErrInvalidStatus,
				},
			},
			wantAccounts: []account{
				{address: payer.Address(), coins: nil},
				{address: treasury, coins: coin.Coins{coinp(2, 500000000)}},
				{address: splitter, coins: coin.Coins{coinp(97, 500000000)}},
			},
			wantStatus: Status_Released,
		},
		"disputed item cannot be released without an arbiter": {
			actions: []action{
				{conditions: []weave.Condition{payer}, msg: disputeMsg(1), blocktime: heldAt},
				{
					msg:            releaseMsg(1),
					blocktime:      releaseAt,
					wantCheckErr:   ErrInvalidStatus,
					wantDeliverErr: ErrInvalidStatus,
				},
			},
			wantAccounts: []account{
				{address: Condition(seq(1)).Address(), coins: coin.Coins{coinp(100, 0)}},
			},
			wantStatus: Status_Disputed,
		},
		"only an arbiter can resolve": {
			actions: []action{
				{conditions: []weave.Condition{payer}, msg: disputeMsg(1), blocktime: heldAt},
				{
					conditions:     []weave.Condition{payer},
					msg:            resolveMsg(1, true),
					blocktime:      heldAt,
					wantCheckErr:   errors.ErrUnauthorized,
					wantDeliverErr: errors.ErrUnauthorized,
				},
			},
			wantStatus: Status_Disputed,
		},
		"resolve requires a dispute": {
			actions: []action{
				{
					conditions:     []weave.Condition{arbiter},
					msg:            resolveMsg(1, true),
					blocktime:      heldAt,
					wantCheckErr:   ErrInvalidStatus,
					wantDeliverErr: ErrInvalidStatus,
				},
			},
			wantStatus: Status_Held,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "cash", "escrow")

			assert.Nil(t, gconf.Save(db, "feepolicy", &feepolicy.Configuration{
				Metadata: &weave.Metadata{Schema: 1},
				FeeBps:   250,
				Treasury: treasury,
			}))
			assert.Nil(t, gconf.Save(db, "escrow", &Configuration{
				Metadata: &weave.Metadata{Schema: 1},
				Arbiters: []weave.Address{arbiter.Address()},
			}))

			// Every case starts with a single held payment of 100 IOV.
			assert.Nil(t, cashctrl.CoinMint(db, payer.Address(), coin.NewCoin(100, 0, "IOV")))
			ctx := weave.WithBlockTime(context.Background(), heldAt)
			id, tags, err := ctrl.Hold(ctx, db, seq(7), payer.Address(), coin.NewCoin(100, 0, "IOV"), splitter)
			assert.Nil(t, err)
			assert.Equal(t, seq(1), id)
			assert.Equal(t, "payment-held", string(tags[0].Value))

			for i, a := range tc.actions {
				cache := db.CacheWrap()
				if _, err := rt.Check(a.ctx(auth), cache, a.tx()); !a.wantCheckErr.Is(err) {
					t.Logf("want: %+v", a.wantCheckErr)
					t.Logf(" got: %+v", err)
					t.Fatalf("action %d check (%T)", i, a.msg)
				}
				cache.Discard()
				if _, err := rt.Deliver(a.ctx(auth), db, a.tx()); !a.wantDeliverErr.Is(err) {
					t.Logf("want: %+v", a.wantDeliverErr)
					t.Logf(" got: %+v", err)
					t.Fatalf("action %d delivery (%T)", i, a.msg)
				}
			}

			for i, a := range tc.wantAccounts {
				coins, err := balance(db, cashctrl, a.address)
				if err != nil {
					t.Fatalf("cannot get %+v balance: %s", a, err)
				}
				if !coins.Equals(a.coins) {
					t.Logf("want: %+v", a.coins)
					t.Logf("got: %+v", coins)
					t.Errorf("unexpected coins for account #%d (%s)", i, a.address)
				}
			}

			item, err := ctrl.Item(db, seq(1))
			assert.Nil(t, err)
			if item.Status != tc.wantStatus {
				t.Fatalf("want %s status, got %s", tc.wantStatus, item.Status)
			}
		})
	}
}

func TestHoldWithoutFunds(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "cash", "escrow")

	ctrl := NewController(cash.NewController(cash.NewBucket()), feepolicy.NewController())
	ctx := weave.WithBlockTime(context.Background(), time.Now())
	payer := weavetest.NewCondition().Address()
	splitter := weavetest.NewCondition().Address()

	_, _, err := ctrl.Hold(ctx, db, seq(1), payer, coin.NewCoin(1, 0, "IOV"), splitter)
	if err == nil {
		t.Fatal("payer without funds must not be able to pay")
	}
}

func TestHoldRequiresBlockTime(t *testing.T) {
	cases := map[string]context.Context{
		"no block time":   context.Background(),
		"zero block time": weave.WithBlockTime(context.Background(), time.Time{}),
	}
	for testName, ctx := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "cash", "escrow")

			ctrl := NewController(cash.NewController(cash.NewBucket()), feepolicy.NewController())
			payer := weavetest.NewCondition().Address()
			splitter := weavetest.NewCondition().Address()

			_, _, err := ctrl.Hold(ctx, db, seq(1), payer, coin.NewCoin(1, 0, "IOV"), splitter)
			if !errors.ErrHuman.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

type account struct {
	address weave.Address
	coins   coin.Coins
}

type action struct {
	conditions     []weave.Condition
	msg            weave.Msg
	blocktime      time.Time
	wantCheckErr   *errors.Error
	wantDeliverErr *errors.Error
}

func (a *action) tx() weave.Tx {
	return &weavetest.Tx{Msg: a.msg}
}

func (a *action) ctx(auth *weavetest.CtxAuth) weave.Context {
	ctx := weave.WithBlockTime(context.Background(), a.blocktime)
	return auth.SetConditions(ctx, a.conditions...)
}

// balance returns the coins of an account. Missing account has no coins.
func balance(db weave.KVStore, ctrl cash.Controller, addr weave.Address) (coin.Coins, error) {
	coins, err := ctrl.Balance(db, addr)
	if errors.ErrNotFound.Is(err) {
		return nil, nil
	}
	return coins, err
}

func releaseMsg(id uint64) *ReleaseMsg {
	return &ReleaseMsg{Metadata: &weave.Metadata{Schema: 1}, EscrowID: seq(id)}
}

func disputeMsg(id uint64) *OpenDisputeMsg {
	return &OpenDisputeMsg{Metadata: &weave.Metadata{Schema: 1}, EscrowID: seq(id)}
}

func resolveMsg(id uint64, refund bool) *ResolveDisputeMsg {
	return &ResolveDisputeMsg{Metadata: &weave.Metadata{Schema: 1}, EscrowID: seq(id), Refund: refund}
}

func coinp(whole, frac int64) *coin.Coin {
	return coin.NewCoinp(whole, frac, "IOV")
}

func seq(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}
