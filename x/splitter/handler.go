package splitter

import (
	"fmt"

	"github.com/attribchain/attrib/x/provenance"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	createSplitterCost         int64 = 0
	distributePerRecipientCost int64 = 0
)

// Graphs is the subset of the provenance controller used to read a graph.
type Graphs interface {
	Graph(db weave.ReadOnlyKVStore, assetID []byte) (*provenance.Graph, error)
}

// RegisterRoutes registers the splitter handlers.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, graphs Graphs, cashctrl CashController) {
	r = migration.SchemaMigratingRegistry("splitter", r)
	b := NewDistributionBucket()

	r.Handle(&CreateSplitterMsg{}, &createSplitterHandler{auth: auth, bucket: b, graphs: graphs})
	r.Handle(&DistributeMsg{}, &distributeHandler{auth: auth, bucket: b, cash: cashctrl})
}

type createSplitterHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	graphs Graphs
}

var _ weave.Handler = (*createSplitterHandler)(nil)

func (h *createSplitterHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: createSplitterCost}, nil
}

func (h *createSplitterHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	d, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if _, err := h.bucket.Put(db, d.AssetID, d); err != nil {
		return nil, errors.Wrap(err, "cannot store distribution")
	}

	tags := []common.KVPair{
		{Key: []byte("event"), Value: []byte("splitter-created")},
		{Key: []byte("asset"), Value: d.AssetID},
		{Key: []byte("splitter"), Value: []byte(d.Address.String())},
	}
	for _, p := range d.Payees {
		tags = append(tags, common.KVPair{
			Key:   []byte("payee"),
			Value: []byte(fmt.Sprintf("%s:%d", p.Address, p.Share)),
		})
	}
	weave.GetLogger(ctx).Info("splitter created",
		"asset", d.AssetID, "splitter", d.Address, "payees", len(d.Payees))
	return &weave.DeliverResult{Data: d.Address, Tags: tags}, nil
}

// validate returns the distribution that is to be created.
func (h *createSplitterHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*Distribution, error) {
	var msg CreateSplitterMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	g, err := h.graphs.Graph(db, msg.AssetID)
	if err != nil {
		return nil, errors.Wrap(err, "cannot load graph")
	}
	if !g.Finalized {
		return nil, errors.Wrapf(ErrGraphNotFinalized, "asset %X", msg.AssetID)
	}

	switch err := h.bucket.Has(db, msg.AssetID); {
	case err == nil:
		return nil, errors.Wrapf(ErrSplitterAlreadyExists, "asset %X", msg.AssetID)
	case errors.ErrNotFound.Is(err):
		// All good, first distribution of this asset.
	default:
		return nil, errors.Wrap(err, "cannot check distribution")
	}

	if len(g.Edges) == 0 {
		return nil, errors.Wrapf(ErrNoContributors, "asset %X", msg.AssetID)
	}
	payees := make([]*Payee, 0, len(g.Edges))
	for _, e := range g.Edges {
		addr := e.Contributor
		if !e.IsContributor() {
			addr = Account(e.ParentAssetID)
		}
		payees = append(payees, &Payee{Address: addr, Share: e.Weight})
	}
	return &Distribution{
		Metadata: &weave.Metadata{Schema: 1},
		AssetID:  msg.AssetID,
		Payees:   payees,
		Address:  Account(msg.AssetID),
	}, nil
}

type distributeHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	cash   CashController
}

var _ weave.Handler = (*distributeHandler)(nil)

func (h *distributeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	d, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return &weave.CheckResult{
		GasAllocated: distributePerRecipientCost * int64(len(d.Payees)),
	}, nil
}

func (h *distributeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	d, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	paid, err := payout(db, h.cash, d)
	if err != nil {
		return nil, errors.Wrap(err, "cannot distribute")
	}
	weave.GetLogger(ctx).Info("splitter distributed",
		"asset", d.AssetID, "paid", paid)
	return &weave.DeliverResult{Data: d.AssetID}, nil
}

func (h *distributeHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*Distribution, error) {
	var msg DistributeMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	var d Distribution
	if err := h.bucket.One(db, msg.AssetID, &d); err != nil {
		return nil, errors.Wrap(err, "cannot load distribution")
	}
	return &d, nil
}
