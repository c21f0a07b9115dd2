package provenance

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/orm"
)

// Directory is the subset of the asset and contributor registry that the
// graph depends on.
type Directory interface {
	AssetOwner(db weave.ReadOnlyKVStore, assetID []byte) (weave.Address, error)
	AssetExists(db weave.ReadOnlyKVStore, assetID []byte) (bool, error)
	IsContributor(db weave.ReadOnlyKVStore, addr weave.Address) (bool, error)
}

// Controller gives read only access to the attribution graphs.
type Controller interface {
	Graph(db weave.ReadOnlyKVStore, assetID []byte) (*Graph, error)
	ContributorEdges(db weave.ReadOnlyKVStore, assetID []byte) ([]*Edge, error)
	ParentEdges(db weave.ReadOnlyKVStore, assetID []byte) ([]*Edge, error)
	TotalWeight(db weave.ReadOnlyKVStore, assetID []byte) (int32, error)
	IsFinalized(db weave.ReadOnlyKVStore, assetID []byte) (bool, error)
}

// NewController returns a controller backed by the graph bucket.
func NewController() Controller {
	return &controller{bucket: NewGraphBucket()}
}

type controller struct {
	bucket orm.ModelBucket
}

func (c *controller) Graph(db weave.ReadOnlyKVStore, assetID []byte) (*Graph, error) {
	return loadGraph(db, c.bucket, assetID)
}

func (c *controller) ContributorEdges(db weave.ReadOnlyKVStore, assetID []byte) ([]*Edge, error) {
	g, err := loadGraph(db, c.bucket, assetID)
	if err != nil {
		return nil, err
	}
	return g.ContributorEdges(), nil
}

func (c *controller) ParentEdges(db weave.ReadOnlyKVStore, assetID []byte) ([]*Edge, error) {
	g, err := loadGraph(db, c.bucket, assetID)
	if err != nil {
		return nil, err
	}
	return g.ParentEdges(), nil
}

func (c *controller) TotalWeight(db weave.ReadOnlyKVStore, assetID []byte) (int32, error) {
	g, err := loadGraph(db, c.bucket, assetID)
	if err != nil {
		return 0, err
	}
	return g.TotalWeight, nil
}

func (c *controller) IsFinalized(db weave.ReadOnlyKVStore, assetID []byte) (bool, error) {
	g, err := loadGraph(db, c.bucket, assetID)
	if err != nil {
		return false, err
	}
	return g.Finalized, nil
}

// loadGraph returns the graph of an asset. A graph that does not exist yet
// is returned as an empty one.
func loadGraph(db weave.ReadOnlyKVStore, b orm.ModelBucket, assetID []byte) (*Graph, error) {
	var g Graph
	switch err := b.One(db, assetID, &g); {
	case err == nil:
		return &g, nil
	case errors.ErrNotFound.Is(err):
		return &Graph{
			Metadata: &weave.Metadata{Schema: 1},
			AssetID:  assetID,
		}, nil
	default:
		return nil, errors.Wrap(err, "cannot load graph")
	}
}
