package directory

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	registerAssetCost     = 0
	transferAssetCost     = 0
	grantContributorCost  = 0
	revokeContributorCost = 0
)

// RegisterRoutes registers handlers for the directory messages.
func RegisterRoutes(r weave.Registry, auth x.Authenticator) {
	r = migration.SchemaMigratingRegistry("directory", r)
	assets := NewAssetBucket()
	contribs := NewContributorBucket()

	r.Handle(&RegisterAssetMsg{}, &registerAssetHandler{auth: auth, assets: assets})
	r.Handle(&TransferAssetMsg{}, &transferAssetHandler{auth: auth, assets: assets})
	r.Handle(&GrantContributorMsg{}, &contributorHandler{auth: auth, contribs: contribs, grant: true})
	r.Handle(&RevokeContributorMsg{}, &contributorHandler{auth: auth, contribs: contribs, grant: false})
	r.Handle(&UpdateConfigurationMsg{}, NewConfigHandler(auth))
}

func NewConfigHandler(auth x.Authenticator) weave.Handler {
	var conf Configuration
	return gconf.NewUpdateConfigurationHandler("directory", &conf, auth)
}

type registerAssetHandler struct {
	auth   x.Authenticator
	assets orm.ModelBucket
}

func (h *registerAssetHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: registerAssetCost}, nil
}

func (h *registerAssetHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	_, owner, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	asset := Asset{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    owner,
	}
	key, err := h.assets.Put(db, nil, &asset)
	if err != nil {
		return nil, errors.Wrap(err, "cannot store asset")
	}
	weave.GetLogger(ctx).Info("asset registered", "asset", key, "owner", owner)
	return &weave.DeliverResult{
		Data: key,
		Tags: []common.KVPair{
			{Key: []byte("event"), Value: []byte("asset-registered")},
			{Key: []byte("asset"), Value: key},
			{Key: []byte("owner"), Value: []byte(owner.String())},
		},
	}, nil
}

func (h *registerAssetHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*RegisterAssetMsg, weave.Address, error) {
	var msg RegisterAssetMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	owner := msg.Owner
	if owner == nil {
		signer := x.MainSigner(ctx, h.auth)
		if signer == nil {
			return nil, nil, errors.Wrap(errors.ErrUnauthorized, "message must be signed")
		}
		owner = signer.Address()
	}
	if !h.auth.HasAddress(ctx, owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "owner signature required")
	}
	return &msg, owner, nil
}

type transferAssetHandler struct {
	auth   x.Authenticator
	assets orm.ModelBucket
}

func (h *transferAssetHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: transferAssetCost}, nil
}

func (h *transferAssetHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, asset, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	asset.Owner = msg.NewOwner
	if _, err := h.assets.Put(db, msg.AssetID, asset); err != nil {
		return nil, errors.Wrap(err, "cannot store asset")
	}
	return &weave.DeliverResult{Data: msg.AssetID}, nil
}

func (h *transferAssetHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*TransferAssetMsg, *Asset, error) {
	var msg TransferAssetMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var asset Asset
	if err := h.assets.One(db, msg.AssetID, &asset); err != nil {
		return nil, nil, errors.Wrap(err, "cannot load asset")
	}
	if !h.auth.HasAddress(ctx, asset.Owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "only the asset owner can transfer it")
	}
	return &msg, &asset, nil
}

// contributorHandler grants or revokes the contributor capability,
// depending on the grant flag. Both operations are restricted to the
// directory admin.
type contributorHandler struct {
	auth     x.Authenticator
	contribs orm.ModelBucket
	grant    bool
}

func (h *contributorHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	if h.grant {
		return &weave.CheckResult{GasAllocated: grantContributorCost}, nil
	}
	return &weave.CheckResult{GasAllocated: revokeContributorCost}, nil
}

func (h *contributorHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	addr, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	c := Contributor{
		Metadata: &weave.Metadata{Schema: 1},
		Address:  addr,
		Active:   h.grant,
	}
	if _, err := h.contribs.Put(db, addr, &c); err != nil {
		return nil, errors.Wrap(err, "cannot store contributor")
	}
	weave.GetLogger(ctx).Info("contributor capability changed", "address", addr, "active", h.grant)
	return &weave.DeliverResult{Data: addr}, nil
}

func (h *contributorHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (weave.Address, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot get message")
	}
	var addr weave.Address
	switch m := msg.(type) {
	case *GrantContributorMsg:
		if !h.grant {
			return nil, errors.Wrapf(errors.ErrMsg, "unexpected message %T", msg)
		}
		addr = m.Address
	case *RevokeContributorMsg:
		if h.grant {
			return nil, errors.Wrapf(errors.ErrMsg, "unexpected message %T", msg)
		}
		addr = m.Address
	default:
		return nil, errors.Wrapf(errors.ErrMsg, "unexpected message %T", msg)
	}
	if err := msg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid message")
	}

	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Admin) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "directory admin signature required")
	}
	return addr, nil
}
