package provenance

import (
	"context"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestAddContributorEdge(t *testing.T) {
	var (
		ownerCond = weavetest.NewCondition()
		otherCond = weavetest.NewCondition()
		alice     = weavetest.NewCondition().Address()
		bobby     = weavetest.NewCondition().Address()
		stranger  = weavetest.NewCondition().Address()
	)

	cases := map[string]struct {
		Graph          *Graph
		Signer         weave.Condition
		Msg            *AddContributorEdgeMsg
		WantCheckErr   *errors.Error
		WantDeliverErr *errors.Error
		WantTotal      int32
	}{
		"first edge": {
			Signer:    ownerCond,
			Msg:       &AddContributorEdgeMsg{Metadata: &weave.Metadata{Schema: 1}, AssetID: seq(1), Contributor: alice, Weight: 6000},
			WantTotal: 6000,
		},
		"fill the budget exactly": {
			Graph: &Graph{
				Metadata:    &weave.Metadata{Schema: 1},
				AssetID:     seq(1),
				Edges:       []*Edge{{Contributor: alice, Weight: 6000}},
				TotalWeight: 6000,
			},
			Signer:    ownerCond,
			Msg:       &AddContributorEdgeMsg{Metadata: &weave.Metadata{Schema: 1}, AssetID: seq(1), Contributor: bobby, Weight: 4000},
			WantTotal: 10000,
		},
		"budget exceeded": {
			Graph: &Graph{
				Metadata:    &weave.Metadata{Schema: 1},
				AssetID:     seq(1),
				Edges:       []*Edge{{Contributor: alice, Weight: 6000}},
				TotalWeight: 6000,
			},
			Signer:         ownerCond,
			Msg:            &AddContributorEdgeMsg{Metadata: &weave.Metadata{Schema: 1}, AssetID: seq(1), Contributor: bobby, Weight: 4001},
			WantCheckErr:   ErrWeightCapExceeded,
			WantDeliverErr: ErrWeightCapExceeded,
			WantTotal:      6000,
		},
		"only the owner can add edges": {
			Signer:         otherCond,
			Msg:            &AddContributorEdgeMsg{Metadata: &weave.Metadata{Schema: 1}, AssetID: seq(1), Contributor: alice, Weight: 10},
			WantCheckErr:   errors.ErrUnauthorized,
			WantDeliverErr: errors.ErrUnauthorized,
		},
		"unknown asset": {
			Signer:         ownerCond,
			Msg:            &AddContributorEdgeMsg{Metadata: &weave.Metadata{Schema: 1}, AssetID: seq(99), Contributor: alice, Weight: 10},
			WantCheckErr:   errors.ErrNotFound,
			WantDeliverErr: errors.ErrNotFound,
		},
		"zero weight": {
			Signer:         ownerCond,
			Msg:            &AddContributorEdgeMsg{Metadata: &weave.Metadata{Schema: 1}, AssetID: seq(1), Contributor: alice, Weight: 0},
			WantCheckErr:   ErrInvalidWeight,
			WantDeliverErr: ErrInvalidWeight,
		},
		"weight above the whole": {
			Signer:         ownerCond,
			Msg:            &AddContributorEdgeMsg{Metadata: &weave.Metadata{Schema: 1}, AssetID: seq(1), Contributor: alice, Weight: 10001},
			WantCheckErr:   ErrInvalidWeight,
			WantDeliverErr: ErrInvalidWeight,
		},
		"contributor capability required": {
			Signer:         ownerCond,
			Msg:            &AddContributorEdgeMsg{Metadata: &weave.Metadata{Schema: 1}, AssetID: seq(1), Contributor: stranger, Weight: 10},
			WantCheckErr:   ErrNotAContributor,
			WantDeliverErr: ErrNotAContributor,
		},
		"zero identity contributor": {
			Signer:         ownerCond,
			Msg:            &AddContributorEdgeMsg{Metadata: &weave.Metadata{Schema: 1}, AssetID: seq(1), Weight: 10},
			WantCheckErr:   errors.ErrEmpty,
			WantDeliverErr: errors.ErrEmpty,
		},
		"finalized graph is checked before the weight": {
			Graph: &Graph{
				Metadata:  &weave.Metadata{Schema: 1},
				AssetID:   seq(1),
				Finalized: true,
			},
			Signer:         ownerCond,
			Msg:            &AddContributorEdgeMsg{Metadata: &weave.Metadata{Schema: 1}, AssetID: seq(1), Contributor: alice, Weight: 0},
			WantCheckErr:   ErrGraphFinalized,
			WantDeliverErr: ErrGraphFinalized,
		},
		"weight is checked before the contributor capability": {
			Signer:         ownerCond,
			Msg:            &AddContributorEdgeMsg{Metadata: &weave.Metadata{Schema: 1}, AssetID: seq(1), Contributor: stranger, Weight: 0},
			WantCheckErr:   ErrInvalidWeight,
			WantDeliverErr: ErrInvalidWeight,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "provenance")

			graphs := NewGraphBucket()
			if tc.Graph != nil {
				_, err := graphs.Put(db, tc.Graph.AssetID, tc.Graph)
				assert.Nil(t, err)
			}

			dir := &directoryStub{
				owners:       map[uint64]weave.Address{1: ownerCond.Address()},
				contributors: []weave.Address{alice, bobby},
			}
			rt := app.NewRouter()
			RegisterRoutes(rt, &weavetest.Auth{Signer: tc.Signer}, dir)
			tx := &weavetest.Tx{Msg: tc.Msg}

			cache := db.CacheWrap()
			if _, err := rt.Check(context.TODO(), cache, tx); !tc.WantCheckErr.Is(err) {
				t.Fatalf("unexpected check error: %s", err)
			}
			cache.Discard()
			if _, err := rt.Deliver(context.TODO(), db, tx); !tc.WantDeliverErr.Is(err) {
				t.Fatalf("unexpected deliver error: %s", err)
			}

			total, err := NewController().TotalWeight(db, seq(1))
			assert.Nil(t, err)
			assert.Equal(t, tc.WantTotal, total)
		})
	}
}

func TestAddParentEdge(t *testing.T) {
	var (
		ownerCond = weavetest.NewCondition()
		alice     = weavetest.NewCondition().Address()
	)

	cases := map[string]struct {
		Graph          *Graph
		Msg            *AddParentEdgeMsg
		WantCheckErr   *errors.Error
		WantDeliverErr *errors.Error
	}{
		"success": {
			Msg: &AddParentEdgeMsg{Metadata: &weave.Metadata{Schema: 1}, ChildAssetID: seq(2), ParentAssetID: seq(1), Weight: 1000},
		},
		"parent must exist": {
			Msg:            &AddParentEdgeMsg{Metadata: &weave.Metadata{Schema: 1}, ChildAssetID: seq(2), ParentAssetID: seq(7), Weight: 1000},
			WantCheckErr:   ErrAssetDoesNotExist,
			WantDeliverErr: ErrAssetDoesNotExist,
		},
		"asset cannot be its own parent": {
			Msg:            &AddParentEdgeMsg{Metadata: &weave.Metadata{Schema: 1}, ChildAssetID: seq(2), ParentAssetID: seq(2), Weight: 1000},
			WantCheckErr:   errors.ErrInput,
			WantDeliverErr: errors.ErrInput,
		},
		"parent and contributor edges share the budget": {
			Graph: &Graph{
				Metadata:    &weave.Metadata{Schema: 1},
				AssetID:     seq(2),
				Edges:       []*Edge{{Contributor: alice, Weight: 9500}},
				TotalWeight: 9500,
			},
			Msg:            &AddParentEdgeMsg{Metadata: &weave.Metadata{Schema: 1}, ChildAssetID: seq(2), ParentAssetID: seq(1), Weight: 501},
			WantCheckErr:   ErrWeightCapExceeded,
			WantDeliverErr: ErrWeightCapExceeded,
		},
		"finalized": {
			Graph: &Graph{
				Metadata:  &weave.Metadata{Schema: 1},
				AssetID:   seq(2),
				Finalized: true,
			},
			Msg:            &AddParentEdgeMsg{Metadata: &weave.Metadata{Schema: 1}, ChildAssetID: seq(2), ParentAssetID: seq(1), Weight: 1},
			WantCheckErr:   ErrGraphFinalized,
			WantDeliverErr: ErrGraphFinalized,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "provenance")

			if tc.Graph != nil {
				_, err := NewGraphBucket().Put(db, tc.Graph.AssetID, tc.Graph)
				assert.Nil(t, err)
			}

			dir := &directoryStub{
				owners: map[uint64]weave.Address{
					1: weavetest.NewCondition().Address(),
					2: ownerCond.Address(),
				},
				contributors: []weave.Address{alice},
			}
			rt := app.NewRouter()
			RegisterRoutes(rt, &weavetest.Auth{Signer: ownerCond}, dir)
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
			parents, err := NewController().ParentEdges(db, seq(2))
			assert.Nil(t, err)
			assert.Equal(t, 1, len(parents))
			assert.Equal(t, seq(1), parents[0].ParentAssetID)
		})
	}
}

func TestFinalizeIsOneWay(t *testing.T) {
	var (
		ownerCond = weavetest.NewCondition()
		otherCond = weavetest.NewCondition()
		alice     = weavetest.NewCondition().Address()
	)

	db := store.MemStore()
	migration.MustInitPkg(db, "provenance")
	dir := &directoryStub{
		owners:       map[uint64]weave.Address{1: ownerCond.Address(), 2: otherCond.Address()},
		contributors: []weave.Address{alice},
	}

	stranger := app.NewRouter()
	RegisterRoutes(stranger, &weavetest.Auth{Signer: otherCond}, dir)
	finalize := &weavetest.Tx{Msg: &FinalizeGraphMsg{Metadata: &weave.Metadata{Schema: 1}, AssetID: seq(1)}}
	if _, err := stranger.Deliver(context.TODO(), db, finalize); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("want unauthorized, got %s", err)
	}

	rt := app.NewRouter()
	RegisterRoutes(rt, &weavetest.Auth{Signer: ownerCond}, dir)

	// An empty graph can be finalized.
	res, err := rt.Deliver(context.TODO(), db, finalize)
	assert.Nil(t, err)
	assert.Equal(t, seq(1), res.Data)

	ok, err := NewController().IsFinalized(db, seq(1))
	assert.Nil(t, err)
	assert.Equal(t, true, ok)

	if _, err := rt.Deliver(context.TODO(), db, finalize); !ErrGraphFinalized.Is(err) {
		t.Fatalf("want graph finalized, got %s", err)
	}

	msgs := []weave.Msg{
		&AddContributorEdgeMsg{Metadata: &weave.Metadata{Schema: 1}, AssetID: seq(1), Contributor: alice, Weight: 1},
		&AddContributorEdgeMsg{Metadata: &weave.Metadata{Schema: 1}, AssetID: seq(1), Contributor: alice, Weight: 10000},
		&AddParentEdgeMsg{Metadata: &weave.Metadata{Schema: 1}, ChildAssetID: seq(1), ParentAssetID: seq(2), Weight: 1},
	}
	for i, msg := range msgs {
		if _, err := rt.Deliver(context.TODO(), db, &weavetest.Tx{Msg: msg}); !ErrGraphFinalized.Is(err) {
			t.Fatalf("message %d: want graph finalized, got %s", i, err)
		}
	}
}

func TestEdgesKeepInsertionOrder(t *testing.T) {
	var (
		ownerCond = weavetest.NewCondition()
		alice     = weavetest.NewCondition().Address()
		bobby     = weavetest.NewCondition().Address()
	)

	db := store.MemStore()
	migration.MustInitPkg(db, "provenance")
	dir := &directoryStub{
		owners:       map[uint64]weave.Address{1: weavetest.NewCondition().Address(), 2: ownerCond.Address()},
		contributors: []weave.Address{alice, bobby},
	}
	rt := app.NewRouter()
	RegisterRoutes(rt, &weavetest.Auth{Signer: ownerCond}, dir)

	msgs := []weave.Msg{
		&AddContributorEdgeMsg{Metadata: &weave.Metadata{Schema: 1}, AssetID: seq(2), Contributor: bobby, Weight: 3000},
		&AddParentEdgeMsg{Metadata: &weave.Metadata{Schema: 1}, ChildAssetID: seq(2), ParentAssetID: seq(1), Weight: 1000},
		&AddContributorEdgeMsg{Metadata: &weave.Metadata{Schema: 1}, AssetID: seq(2), Contributor: alice, Weight: 6000},
	}
	for i, msg := range msgs {
		if _, err := rt.Deliver(context.TODO(), db, &weavetest.Tx{Msg: msg}); err != nil {
			t.Fatalf("message %d: %s", i, err)
		}
	}

	ctrl := NewController()
	g, err := ctrl.Graph(db, seq(2))
	assert.Nil(t, err)
	assert.Equal(t, 3, len(g.Edges))
	assert.Equal(t, int32(10000), g.TotalWeight)

	contribs, err := ctrl.ContributorEdges(db, seq(2))
	assert.Nil(t, err)
	assert.Equal(t, []*Edge{
		{Contributor: bobby, Weight: 3000},
		{Contributor: alice, Weight: 6000},
	}, contribs)
}

func TestAbsentGraphReadsEmpty(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()

	g, err := ctrl.Graph(db, seq(5))
	assert.Nil(t, err)
	assert.Equal(t, 0, len(g.Edges))
	assert.Equal(t, false, g.Finalized)

	parents, err := ctrl.ParentEdges(db, seq(5))
	assert.Nil(t, err)
	assert.Equal(t, 0, len(parents))
}
