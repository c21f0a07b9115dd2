package splitter

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &CreateSplitterMsg{}, migration.NoModification)
	migration.MustRegister(1, &DistributeMsg{}, migration.NoModification)
}

var _ weave.Msg = (*CreateSplitterMsg)(nil)
var _ weave.Msg = (*DistributeMsg)(nil)

func (CreateSplitterMsg) Path() string {
	return "splitter/create"
}

func (m *CreateSplitterMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if len(m.AssetID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "asset id")
	}
	return nil
}

func (DistributeMsg) Path() string {
	return "splitter/distribute"
}

func (m *DistributeMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if len(m.AssetID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "asset id")
	}
	return nil
}
