package provenance

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

// MaxWeight is the weight budget of a single asset, in basis points.
const MaxWeight = 10000

func init() {
	migration.MustRegister(1, &Graph{}, migration.NoModification)
}

var _ orm.Model = (*Graph)(nil)

// Validate ensures the graph is consistent. The total weight must be the sum
// of all edge weights and must not exceed the budget.
func (g *Graph) Validate() error {
	if err := g.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if len(g.AssetID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "asset id")
	}
	var total int32
	for i, e := range g.Edges {
		if err := e.Validate(); err != nil {
			return errors.Wrapf(err, "edge #%d", i)
		}
		total += e.Weight
	}
	if total != g.TotalWeight {
		return errors.Wrapf(errors.ErrModel, "total weight %d does not match edges sum %d", g.TotalWeight, total)
	}
	if g.TotalWeight > MaxWeight {
		return errors.Wrapf(ErrWeightCapExceeded, "total weight %d", g.TotalWeight)
	}
	return nil
}

func (g *Graph) Copy() orm.CloneableData {
	edges := make([]*Edge, len(g.Edges))
	for i, e := range g.Edges {
		edges[i] = &Edge{
			Contributor:   e.Contributor.Clone(),
			ParentAssetID: copyBytes(e.ParentAssetID),
			Weight:        e.Weight,
		}
	}
	return &Graph{
		Metadata:    g.Metadata.Copy(),
		AssetID:     copyBytes(g.AssetID),
		Edges:       edges,
		TotalWeight: g.TotalWeight,
		Finalized:   g.Finalized,
	}
}

// ContributorEdges returns contributor edges, in the order they were added.
func (g *Graph) ContributorEdges() []*Edge {
	var res []*Edge
	for _, e := range g.Edges {
		if e.IsContributor() {
			res = append(res, e)
		}
	}
	return res
}

// ParentEdges returns parent asset edges, in the order they were added.
func (g *Graph) ParentEdges() []*Edge {
	var res []*Edge
	for _, e := range g.Edges {
		if !e.IsContributor() {
			res = append(res, e)
		}
	}
	return res
}

// remaining returns how many basis points can still be attributed.
func (g *Graph) remaining() int32 {
	return MaxWeight - g.TotalWeight
}

func (e *Edge) Validate() error {
	if e == nil {
		return errors.Wrap(errors.ErrEmpty, "edge")
	}
	switch hasC, hasP := len(e.Contributor) != 0, len(e.ParentAssetID) != 0; {
	case hasC && hasP:
		return errors.Wrap(errors.ErrModel, "edge cannot point to both a contributor and a parent")
	case hasC:
		if err := e.Contributor.Validate(); err != nil {
			return errors.Wrap(err, "contributor")
		}
	case hasP:
	default:
		return errors.Wrap(errors.ErrEmpty, "edge target")
	}
	return validateWeight(e.Weight)
}

// IsContributor returns true if the edge attributes a contributor.
func (e *Edge) IsContributor() bool {
	return len(e.Contributor) != 0
}

func validateWeight(w int32) error {
	if w <= 0 || w > MaxWeight {
		return errors.Wrapf(ErrInvalidWeight, "weight must be within 1..%d, got %d", MaxWeight, w)
	}
	return nil
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	cpy := make([]byte, len(b))
	copy(cpy, b)
	return cpy
}

// NewGraphBucket returns a bucket for managing graphs, keyed by asset id.
func NewGraphBucket() orm.ModelBucket {
	b := orm.NewModelBucket("graph", &Graph{})
	return migration.NewModelBucket("provenance", b)
}

// RegisterQuery will register the graph bucket as "/graphs".
func RegisterQuery(qr weave.QueryRouter) {
	NewGraphBucket().Register("graphs", qr)
}
