package receipt

import (
	"strconv"

	"github.com/attribchain/attrib/x/escrow"
	"github.com/attribchain/attrib/x/splitter"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	verifyAndPayCost int64 = 0
	pauseCost        int64 = 0
)

// Distributions is the subset of the splitter controller used to find the
// distribution of an asset.
type Distributions interface {
	Distribution(db weave.ReadOnlyKVStore, assetID []byte) (*splitter.Distribution, error)
}

// Escrow takes custody of an accepted payment. Hold moves the amount from
// the payer and returns the new escrow item id with its notification tags.
type Escrow interface {
	Hold(ctx weave.Context, db weave.KVStore, assetID []byte, payer weave.Address, amount coin.Coin, splitter weave.Address) ([]byte, []common.KVPair, error)
}

// RegisterRoutes registers the receipt handlers.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, dists Distributions, esc Escrow) {
	r = migration.SchemaMigratingRegistry("receipt", r)

	r.Handle(&VerifyAndPayMsg{}, &verifyAndPayHandler{
		auth:   auth,
		nonces: NewNonceBucket(),
		dists:  dists,
		escrow: esc,
	})
	r.Handle(&PauseMsg{}, &pauseHandler{auth: auth, pause: true})
	r.Handle(&UnpauseMsg{}, &pauseHandler{auth: auth, pause: false})
	r.Handle(&UpdateConfigurationMsg{}, NewConfigHandler(auth))
}

func NewConfigHandler(auth x.Authenticator) weave.Handler {
	var conf Configuration
	return gconf.NewUpdateConfigurationHandler("receipt", &conf, auth)
}

type verifyAndPayHandler struct {
	auth   x.Authenticator
	nonces orm.ModelBucket
	dists  Distributions
	escrow Escrow
}

var _ weave.Handler = (*verifyAndPayHandler)(nil)

func (h *verifyAndPayHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: verifyAndPayCost}, nil
}

// Deliver advances the payer nonce and moves the funds into escrow. Both
// writes happen within the same transaction, so a failing fund movement
// discards the nonce advance as well.
func (h *verifyAndPayHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	r := msg.Receipt

	next := &PayerNonce{Metadata: &weave.Metadata{Schema: 1}, Nonce: r.Nonce + 1}
	if _, err := h.nonces.Put(db, r.Payer, next); err != nil {
		return nil, errors.Wrap(err, "cannot advance nonce")
	}

	dist, err := h.dists.Distribution(db, r.AssetID)
	switch {
	case err == nil:
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(ErrSplitterNotCreated, "asset %X", r.AssetID)
	default:
		return nil, errors.Wrap(err, "cannot load distribution")
	}

	id, tags, err := h.escrow.Hold(ctx, db, r.AssetID, r.Payer, *r.Amount, dist.Address)
	if err != nil {
		return nil, errors.Wrap(err, "cannot hold payment")
	}

	weave.GetLogger(ctx).Info("receipt accepted",
		"payer", r.Payer, "nonce", r.Nonce, "asset", r.AssetID, "escrow", id)
	tags = append(tags, common.KVPair{Key: []byte("nonce"), Value: []byte(strconv.FormatUint(r.Nonce, 10))})
	return &weave.DeliverResult{Data: id, Tags: tags}, nil
}

// validate runs the verification steps that precede any write: verifier
// capability, pause switch, deadline, signature and nonce.
func (h *verifyAndPayHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*VerifyAndPayMsg, error) {
	var msg VerifyAndPayMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if !x.HasNAddresses(ctx, h.auth, conf.Verifiers, 1) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "verifier signature required")
	}
	if conf.Paused {
		return nil, errors.Wrap(ErrPaused, "receipt verification is paused")
	}

	r := msg.Receipt
	now, err := escrow.BlockNow(ctx)
	if err != nil {
		return nil, err
	}
	if r.Deadline.Time().Before(now) {
		return nil, errors.Wrapf(ErrReceiptExpired, "deadline %s", r.Deadline)
	}

	digest := Digest(conf.Domain(weave.GetChainID(ctx)), r)
	signer, err := RecoverPayer(digest, msg.Signature)
	if err != nil {
		return nil, err
	}
	if len(signer) == 0 || !signer.Equals(r.Payer) {
		return nil, errors.Wrap(ErrInvalidSignature, "signer is not the payer")
	}

	expected, err := NextNonce(db, r.Payer)
	if err != nil {
		return nil, err
	}
	if r.Nonce != expected {
		return nil, errors.Wrapf(ErrNonceMismatch, "want %d, got %d", expected, r.Nonce)
	}
	return &msg, nil
}

// pauseHandler sets or clears the pause flag, depending on the pause field.
type pauseHandler struct {
	auth  x.Authenticator
	pause bool
}

var _ weave.Handler = (*pauseHandler)(nil)

func (h *pauseHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: pauseCost}, nil
}

func (h *pauseHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf.Paused = h.pause
	if err := gconf.Save(db, "receipt", conf); err != nil {
		return nil, errors.Wrap(err, "cannot save configuration")
	}
	weave.GetLogger(ctx).Info("receipt verification pause toggled", "paused", h.pause)
	return &weave.DeliverResult{}, nil
}

func (h *pauseHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*Configuration, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot get message")
	}
	if err := msg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid message")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Pauser) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "pauser signature required")
	}
	if conf.Paused == h.pause {
		return nil, errors.Wrapf(errors.ErrState, "paused is already %t", h.pause)
	}
	return conf, nil
}
