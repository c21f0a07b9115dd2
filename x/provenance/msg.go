package provenance

import (
	"bytes"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &AddContributorEdgeMsg{}, migration.NoModification)
	migration.MustRegister(1, &AddParentEdgeMsg{}, migration.NoModification)
	migration.MustRegister(1, &FinalizeGraphMsg{}, migration.NoModification)
}

var _ weave.Msg = (*AddContributorEdgeMsg)(nil)
var _ weave.Msg = (*AddParentEdgeMsg)(nil)
var _ weave.Msg = (*FinalizeGraphMsg)(nil)

func (AddContributorEdgeMsg) Path() string {
	return "provenance/add_contributor_edge"
}

// Validate checks the message format. The weight range is checked by the
// handler, after authorization.
func (m *AddContributorEdgeMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if len(m.AssetID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "asset id")
	}
	if len(m.Contributor) == 0 {
		return errors.Wrap(errors.ErrEmpty, "contributor")
	}
	if err := m.Contributor.Validate(); err != nil {
		return errors.Wrap(err, "contributor")
	}
	return nil
}

func (AddParentEdgeMsg) Path() string {
	return "provenance/add_parent_edge"
}

func (m *AddParentEdgeMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if len(m.ChildAssetID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "child asset id")
	}
	if len(m.ParentAssetID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "parent asset id")
	}
	if bytes.Equal(m.ChildAssetID, m.ParentAssetID) {
		return errors.Wrap(errors.ErrInput, "asset cannot be its own parent")
	}
	return nil
}

func (FinalizeGraphMsg) Path() string {
	return "provenance/finalize_graph"
}

func (m *FinalizeGraphMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if len(m.AssetID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "asset id")
	}
	return nil
}
