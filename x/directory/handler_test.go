package directory

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
	"github.com/iov-one/weave/x"
)

func TestRegisterAssetHandler(t *testing.T) {
	var (
		aliceCond = weavetest.NewCondition()
		bobbyCond = weavetest.NewCondition()
	)

	cases := map[string]struct {
		Tx             weave.Tx
		Auth           x.Authenticator
		WantCheckErr   *errors.Error
		WantDeliverErr *errors.Error
		WantOwner      weave.Address
	}{
		"owner defaults to the signer": {
			Tx:        &weavetest.Tx{Msg: &RegisterAssetMsg{Metadata: &weave.Metadata{Schema: 1}}},
			Auth:      &weavetest.Auth{Signer: aliceCond},
			WantOwner: aliceCond.Address(),
		},
		"explicit owner that signed": {
			Tx: &weavetest.Tx{Msg: &RegisterAssetMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    bobbyCond.Address(),
			}},
			Auth:      &weavetest.Auth{Signers: []weave.Condition{aliceCond, bobbyCond}},
			WantOwner: bobbyCond.Address(),
		},
		"explicit owner must sign": {
			Tx: &weavetest.Tx{Msg: &RegisterAssetMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    bobbyCond.Address(),
			}},
			Auth:           &weavetest.Auth{Signer: aliceCond},
			WantCheckErr:   errors.ErrUnauthorized,
			WantDeliverErr: errors.ErrUnauthorized,
		},
		"unsigned": {
			Tx:             &weavetest.Tx{Msg: &RegisterAssetMsg{Metadata: &weave.Metadata{Schema: 1}}},
			Auth:           &weavetest.Auth{},
			WantCheckErr:   errors.ErrUnauthorized,
			WantDeliverErr: errors.ErrUnauthorized,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "directory")

			rt := app.NewRouter()
			RegisterRoutes(rt, tc.Auth)

			cache := db.CacheWrap()
			if _, err := rt.Check(context.TODO(), cache, tc.Tx); !tc.WantCheckErr.Is(err) {
				t.Fatalf("unexpected check error: %s", err)
			}
			cache.Discard()
			res, err := rt.Deliver(context.TODO(), db, tc.Tx)
			if !tc.WantDeliverErr.Is(err) {
				t.Fatalf("unexpected deliver error: %s", err)
			}
			if tc.WantDeliverErr != nil {
				return
			}
			assert.Equal(t, seq(1), res.Data)

			owner, err := NewController().AssetOwner(db, res.Data)
			assert.Nil(t, err)
			assert.Equal(t, tc.WantOwner, owner)
		})
	}
}

func TestAssetIdentifiersAreSequential(t *testing.T) {
	alice := weavetest.NewCondition()
	db := store.MemStore()
	migration.MustInitPkg(db, "directory")

	rt := app.NewRouter()
	RegisterRoutes(rt, &weavetest.Auth{Signer: alice})

	for i := 1; i <= 3; i++ {
		tx := &weavetest.Tx{Msg: &RegisterAssetMsg{Metadata: &weave.Metadata{Schema: 1}}}
		res, err := rt.Deliver(context.TODO(), db, tx)
		assert.Nil(t, err)
		assert.Equal(t, seq(uint64(i)), res.Data)
	}
}

func TestTransferAssetHandler(t *testing.T) {
	var (
		aliceCond = weavetest.NewCondition()
		bobbyCond = weavetest.NewCondition()
	)

	cases := map[string]struct {
		Msg            *TransferAssetMsg
		Auth           x.Authenticator
		WantCheckErr   *errors.Error
		WantDeliverErr *errors.Error
	}{
		"success": {
			Msg: &TransferAssetMsg{
				Metadata: &weave.Metadata{Schema: 1},
				AssetID:  seq(1),
				NewOwner: bobbyCond.Address(),
			},
			Auth: &weavetest.Auth{Signer: aliceCond},
		},
		"only the owner can transfer": {
			Msg: &TransferAssetMsg{
				Metadata: &weave.Metadata{Schema: 1},
				AssetID:  seq(1),
				NewOwner: bobbyCond.Address(),
			},
			Auth:           &weavetest.Auth{Signer: bobbyCond},
			WantCheckErr:   errors.ErrUnauthorized,
			WantDeliverErr: errors.ErrUnauthorized,
		},
		"asset must exist": {
			Msg: &TransferAssetMsg{
				Metadata: &weave.Metadata{Schema: 1},
				AssetID:  seq(42),
				NewOwner: bobbyCond.Address(),
			},
			Auth:           &weavetest.Auth{Signer: aliceCond},
			WantCheckErr:   errors.ErrNotFound,
			WantDeliverErr: errors.ErrNotFound,
		},
		"new owner is required": {
			Msg: &TransferAssetMsg{
				Metadata: &weave.Metadata{Schema: 1},
				AssetID:  seq(1),
			},
			Auth:           &weavetest.Auth{Signer: aliceCond},
			WantCheckErr:   errors.ErrEmpty,
			WantDeliverErr: errors.ErrEmpty,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "directory")

			_, err := NewAssetBucket().Put(db, nil, &Asset{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    aliceCond.Address(),
			})
			assert.Nil(t, err)

			rt := app.NewRouter()
			RegisterRoutes(rt, tc.Auth)
			tx := &weavetest.Tx{Msg: tc.Msg}

			cache := db.CacheWrap()
			if _, err := rt.Check(context.TODO(), cache, tx); !tc.WantCheckErr.Is(err) {
				t.Fatalf("unexpected check error: %s", err)
			}
			cache.Discard()
			if _, err := rt.Deliver(context.TODO(), db, tx); !tc.WantDeliverErr.Is(err) {
				t.Fatalf("unexpected deliver error: %s", err)
			}
			if tc.WantDeliverErr != nil {
				return
			}
			owner, err := NewController().AssetOwner(db, tc.Msg.AssetID)
			assert.Nil(t, err)
			assert.Equal(t, tc.Msg.NewOwner, owner)
		})
	}
}

func TestContributorCapability(t *testing.T) {
	var (
		adminCond = weavetest.NewCondition()
		aliceCond = weavetest.NewCondition()
		bobbyCond = weavetest.NewCondition()
	)

	cases := map[string]struct {
		Msgs           []weave.Msg
		Auth           x.Authenticator
		WantDeliverErr *errors.Error
		WantActive     bool
	}{
		"admin grants": {
			Msgs: []weave.Msg{
				&GrantContributorMsg{Metadata: &weave.Metadata{Schema: 1}, Address: aliceCond.Address()},
			},
			Auth:       &weavetest.Auth{Signer: adminCond},
			WantActive: true,
		},
		"admin grants and revokes": {
			Msgs: []weave.Msg{
				&GrantContributorMsg{Metadata: &weave.Metadata{Schema: 1}, Address: aliceCond.Address()},
				&RevokeContributorMsg{Metadata: &weave.Metadata{Schema: 1}, Address: aliceCond.Address()},
			},
			Auth:       &weavetest.Auth{Signer: adminCond},
			WantActive: false,
		},
		"only admin can grant": {
			Msgs: []weave.Msg{
				&GrantContributorMsg{Metadata: &weave.Metadata{Schema: 1}, Address: aliceCond.Address()},
			},
			Auth:           &weavetest.Auth{Signer: bobbyCond},
			WantDeliverErr: errors.ErrUnauthorized,
		},
		"zero identity cannot be granted": {
			Msgs: []weave.Msg{
				&GrantContributorMsg{Metadata: &weave.Metadata{Schema: 1}},
			},
			Auth:           &weavetest.Auth{Signer: adminCond},
			WantDeliverErr: errors.ErrEmpty,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "directory")
			assert.Nil(t, gconf.Save(db, "directory", &Configuration{
				Metadata: &weave.Metadata{Schema: 1},
				Admin:    adminCond.Address(),
			}))

			rt := app.NewRouter()
			RegisterRoutes(rt, tc.Auth)

			var err error
			for _, msg := range tc.Msgs {
				if _, err = rt.Deliver(context.TODO(), db, &weavetest.Tx{Msg: msg}); err != nil {
					break
				}
			}
			if !tc.WantDeliverErr.Is(err) {
				t.Fatalf("unexpected deliver error: %s", err)
			}

			ok, err := NewController().IsContributor(db, aliceCond.Address())
			assert.Nil(t, err)
			assert.Equal(t, tc.WantActive, ok)
		})
	}
}

func seq(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}

func TestUpdateConfiguration(t *testing.T) {
	var (
		ownerCond = weavetest.NewCondition()
		adminCond = weavetest.NewCondition()
		bobbyCond = weavetest.NewCondition()
	)

	cases := map[string]struct {
		Auth      x.Authenticator
		WantErr   *errors.Error
		WantAdmin weave.Address
	}{
		"owner replaces the admin": {
			Auth:      &weavetest.Auth{Signer: ownerCond},
			WantAdmin: bobbyCond.Address(),
		},
		"admin cannot replace itself": {
			Auth:      &weavetest.Auth{Signer: adminCond},
			WantErr:   errors.ErrUnauthorized,
			WantAdmin: adminCond.Address(),
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "directory")
			assert.Nil(t, gconf.Save(db, "directory", &Configuration{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    ownerCond.Address(),
				Admin:    adminCond.Address(),
			}))

			rt := app.NewRouter()
			RegisterRoutes(rt, tc.Auth)
			tx := &weavetest.Tx{Msg: &UpdateConfigurationMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Patch: &Configuration{
					Metadata: &weave.Metadata{Schema: 1},
					Admin:    bobbyCond.Address(),
				},
			}}
			if _, err := rt.Deliver(context.TODO(), db, tx); !tc.WantErr.Is(err) {
				t.Fatalf("unexpected deliver error: %s", err)
			}

			conf, err := loadConf(db)
			assert.Nil(t, err)
			assert.Equal(t, tc.WantAdmin, conf.Admin)
		})
	}
}
