package escrow

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	openDisputeCost    int64 = 0
	releaseCost        int64 = 0
	resolveDisputeCost int64 = 0
)

// RegisterRoutes will instantiate and register all handlers in this package.
// Items are created by the controller only, there is no route for it.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, ctrl *Controller) {
	r = migration.SchemaMigratingRegistry("escrow", r)

	r.Handle(&OpenDisputeMsg{}, &openDisputeHandler{auth: auth, ctrl: ctrl})
	r.Handle(&ReleaseMsg{}, &releaseHandler{ctrl: ctrl})
	r.Handle(&ResolveDisputeMsg{}, &resolveDisputeHandler{auth: auth, ctrl: ctrl})
	r.Handle(&UpdateConfigurationMsg{}, NewConfigHandler(auth))
}

func NewConfigHandler(auth x.Authenticator) weave.Handler {
	var conf Configuration
	return gconf.NewUpdateConfigurationHandler("escrow", &conf, auth)
}

// openDisputeHandler stops an item release until an arbiter decides.
type openDisputeHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ weave.Handler = (*openDisputeHandler)(nil)

func (h *openDisputeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: openDisputeCost}, nil
}

func (h *openDisputeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, item, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	item.Status = Status_Disputed
	if _, err := h.ctrl.bucket.Put(db, msg.EscrowID, item); err != nil {
		return nil, errors.Wrap(err, "cannot store escrow item")
	}
	weave.GetLogger(ctx).Info("dispute opened", "escrow", msg.EscrowID, "payer", item.Payer)
	return &weave.DeliverResult{
		Tags: []common.KVPair{
			{Key: []byte("event"), Value: []byte("dispute-opened")},
			{Key: []byte("escrow"), Value: msg.EscrowID},
			{Key: []byte("payer"), Value: []byte(item.Payer.String())},
		},
	}, nil
}

func (h *openDisputeHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*OpenDisputeMsg, *Item, error) {
	var msg OpenDisputeMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	item, err := h.ctrl.Item(db, msg.EscrowID)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, item.Payer) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "payer signature required")
	}
	if item.Status != Status_Held {
		return nil, nil, errors.Wrapf(ErrInvalidStatus, "item is %s", item.Status)
	}
	now, err := BlockNow(ctx)
	if err != nil {
		return nil, nil, err
	}
	if !isDisputable(now, item) {
		return nil, nil, errors.Wrapf(ErrDisputeWindowClosed, "window closed at %s", item.ReleaseAt)
	}
	return &msg, item, nil
}

// releaseHandler settles an item once its hold window is over. Anyone can
// request it.
type releaseHandler struct {
	ctrl *Controller
}

var _ weave.Handler = (*releaseHandler)(nil)

func (h *releaseHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: releaseCost}, nil
}

func (h *releaseHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, item, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	tags, err := h.ctrl.settle(db, msg.EscrowID, item)
	if err != nil {
		return nil, err
	}
	weave.GetLogger(ctx).Info("payment released", "escrow", msg.EscrowID, "splitter", item.Splitter)
	return &weave.DeliverResult{Tags: tags}, nil
}

func (h *releaseHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*ReleaseMsg, *Item, error) {
	var msg ReleaseMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	item, err := h.ctrl.Item(db, msg.EscrowID)
	if err != nil {
		return nil, nil, err
	}
	if item.Status != Status_Held {
		return nil, nil, errors.Wrapf(ErrInvalidStatus, "item is %s", item.Status)
	}
	now, err := BlockNow(ctx)
	if err != nil {
		return nil, nil, err
	}
	if !isReleasable(now, item) {
		return nil, nil, errors.Wrapf(ErrHoldPeriodNotOver, "releasable at %s", item.ReleaseAt)
	}
	return &msg, item, nil
}

// resolveDisputeHandler applies the arbiter decision to a disputed item.
type resolveDisputeHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ weave.Handler = (*resolveDisputeHandler)(nil)

func (h *resolveDisputeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: resolveDisputeCost}, nil
}

func (h *resolveDisputeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, item, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	var tags []common.KVPair
	if msg.Refund {
		tags, err = h.ctrl.refund(db, msg.EscrowID, item)
	} else {
		tags, err = h.ctrl.settle(db, msg.EscrowID, item)
	}
	if err != nil {
		return nil, err
	}
	weave.GetLogger(ctx).Info("dispute resolved", "escrow", msg.EscrowID, "refund", msg.Refund)
	return &weave.DeliverResult{Tags: tags}, nil
}

func (h *resolveDisputeHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*ResolveDisputeMsg, *Item, error) {
	var msg ResolveDisputeMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	arbs, err := arbiters(db)
	if err != nil {
		return nil, nil, err
	}
	if !x.HasNAddresses(ctx, h.auth, arbs, 1) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "arbiter signature required")
	}
	item, err := h.ctrl.Item(db, msg.EscrowID)
	if err != nil {
		return nil, nil, err
	}
	if item.Status != Status_Disputed {
		return nil, nil, errors.Wrapf(ErrInvalidStatus, "item is %s", item.Status)
	}
	return &msg, item, nil
}
