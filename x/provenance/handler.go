package provenance

import (
	"fmt"
	"strconv"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	addEdgeCost       int64 = 0
	finalizeGraphCost int64 = 0
)

// RegisterRoutes registers the graph handlers. The directory answers the
// ownership, existence and capability questions.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, dir Directory) {
	r = migration.SchemaMigratingRegistry("provenance", r)
	b := NewGraphBucket()

	r.Handle(&AddContributorEdgeMsg{}, &addContributorEdgeHandler{auth: auth, graphs: b, dir: dir})
	r.Handle(&AddParentEdgeMsg{}, &addParentEdgeHandler{auth: auth, graphs: b, dir: dir})
	r.Handle(&FinalizeGraphMsg{}, &finalizeGraphHandler{auth: auth, graphs: b, dir: dir})
}

// ownedGraph returns the graph of an asset if the owner of that asset
// signed the transaction.
func ownedGraph(ctx weave.Context, db weave.KVStore, auth x.Authenticator, dir Directory, graphs orm.ModelBucket, assetID []byte) (*Graph, error) {
	owner, err := dir.AssetOwner(db, assetID)
	if err != nil {
		return nil, errors.Wrap(err, "asset owner")
	}
	if !auth.HasAddress(ctx, owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "asset owner signature required")
	}
	return loadGraph(db, graphs, assetID)
}

// checkBudget returns an error if the graph cannot take an edge of given
// weight without exceeding the budget.
func checkBudget(g *Graph, weight int32) error {
	if weight > g.remaining() {
		return errors.Wrapf(ErrWeightCapExceeded, "%d + %d > %d", g.TotalWeight, weight, MaxWeight)
	}
	return nil
}

func appendEdge(ctx weave.Context, db weave.KVStore, graphs orm.ModelBucket, g *Graph, e *Edge) (*weave.DeliverResult, error) {
	g.Edges = append(g.Edges, e)
	g.TotalWeight += e.Weight
	if _, err := graphs.Put(db, g.AssetID, g); err != nil {
		return nil, errors.Wrap(err, "cannot store graph")
	}

	kind, target := "contributor", e.Contributor.String()
	if !e.IsContributor() {
		kind, target = "parent", fmt.Sprintf("%X", e.ParentAssetID)
	}
	weave.GetLogger(ctx).Info("edge added",
		"asset", g.AssetID, "kind", kind, "target", target,
		"weight", e.Weight, "total", g.TotalWeight)

	return &weave.DeliverResult{
		Data: g.AssetID,
		Tags: []common.KVPair{
			{Key: []byte("event"), Value: []byte("edge-added")},
			{Key: []byte("asset"), Value: g.AssetID},
			{Key: []byte("kind"), Value: []byte(kind)},
			{Key: []byte("target"), Value: []byte(target)},
			{Key: []byte("weight"), Value: []byte(strconv.Itoa(int(e.Weight)))},
		},
	}, nil
}

type addContributorEdgeHandler struct {
	auth   x.Authenticator
	graphs orm.ModelBucket
	dir    Directory
}

var _ weave.Handler = (*addContributorEdgeHandler)(nil)

func (h *addContributorEdgeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: addEdgeCost}, nil
}

func (h *addContributorEdgeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, g, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return appendEdge(ctx, db, h.graphs, g, &Edge{
		Contributor: msg.Contributor,
		Weight:      msg.Weight,
	})
}

func (h *addContributorEdgeHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*AddContributorEdgeMsg, *Graph, error) {
	var msg AddContributorEdgeMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	g, err := ownedGraph(ctx, db, h.auth, h.dir, h.graphs, msg.AssetID)
	if err != nil {
		return nil, nil, err
	}
	if g.Finalized {
		return nil, nil, errors.Wrapf(ErrGraphFinalized, "asset %X", g.AssetID)
	}
	if err := validateWeight(msg.Weight); err != nil {
		return nil, nil, err
	}
	switch ok, err := h.dir.IsContributor(db, msg.Contributor); {
	case err != nil:
		return nil, nil, errors.Wrap(err, "contributor capability")
	case !ok:
		return nil, nil, errors.Wrapf(ErrNotAContributor, "%s", msg.Contributor)
	}
	if err := checkBudget(g, msg.Weight); err != nil {
		return nil, nil, err
	}
	return &msg, g, nil
}

type addParentEdgeHandler struct {
	auth   x.Authenticator
	graphs orm.ModelBucket
	dir    Directory
}

var _ weave.Handler = (*addParentEdgeHandler)(nil)

func (h *addParentEdgeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: addEdgeCost}, nil
}

func (h *addParentEdgeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, g, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return appendEdge(ctx, db, h.graphs, g, &Edge{
		ParentAssetID: msg.ParentAssetID,
		Weight:        msg.Weight,
	})
}

func (h *addParentEdgeHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*AddParentEdgeMsg, *Graph, error) {
	var msg AddParentEdgeMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	g, err := ownedGraph(ctx, db, h.auth, h.dir, h.graphs, msg.ChildAssetID)
	if err != nil {
		return nil, nil, err
	}
	if g.Finalized {
		return nil, nil, errors.Wrapf(ErrGraphFinalized, "asset %X", g.AssetID)
	}
	if err := validateWeight(msg.Weight); err != nil {
		return nil, nil, err
	}
	switch ok, err := h.dir.AssetExists(db, msg.ParentAssetID); {
	case err != nil:
		return nil, nil, errors.Wrap(err, "parent asset")
	case !ok:
		return nil, nil, errors.Wrapf(ErrAssetDoesNotExist, "parent %X", msg.ParentAssetID)
	}
	if err := checkBudget(g, msg.Weight); err != nil {
		return nil, nil, err
	}
	return &msg, g, nil
}

type finalizeGraphHandler struct {
	auth   x.Authenticator
	graphs orm.ModelBucket
	dir    Directory
}

var _ weave.Handler = (*finalizeGraphHandler)(nil)

func (h *finalizeGraphHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: finalizeGraphCost}, nil
}

func (h *finalizeGraphHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	g, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	g.Finalized = true
	if _, err := h.graphs.Put(db, g.AssetID, g); err != nil {
		return nil, errors.Wrap(err, "cannot store graph")
	}
	weave.GetLogger(ctx).Info("graph finalized",
		"asset", g.AssetID, "edges", len(g.Edges), "total", g.TotalWeight)
	return &weave.DeliverResult{
		Data: g.AssetID,
		Tags: []common.KVPair{
			{Key: []byte("event"), Value: []byte("graph-finalized")},
			{Key: []byte("asset"), Value: g.AssetID},
		},
	}, nil
}

func (h *finalizeGraphHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*Graph, error) {
	var msg FinalizeGraphMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	g, err := ownedGraph(ctx, db, h.auth, h.dir, h.graphs, msg.AssetID)
	if err != nil {
		return nil, err
	}
	if g.Finalized {
		return nil, errors.Wrapf(ErrGraphFinalized, "asset %X", g.AssetID)
	}
	return g, nil
}
