package escrow

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &OpenDisputeMsg{}, migration.NoModification)
	migration.MustRegister(1, &ReleaseMsg{}, migration.NoModification)
	migration.MustRegister(1, &ResolveDisputeMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

const (
	pathOpenDisputeMsg      = "escrow/open_dispute"
	pathReleaseMsg          = "escrow/release"
	pathResolveDisputeMsg   = "escrow/resolve_dispute"
	pathUpdateConfiguration = "escrow/update_configuration"
)

var _ weave.Msg = (*OpenDisputeMsg)(nil)
var _ weave.Msg = (*ReleaseMsg)(nil)
var _ weave.Msg = (*ResolveDisputeMsg)(nil)
var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

// Path fulfills weave.Msg interface to allow routing
func (OpenDisputeMsg) Path() string {
	return pathOpenDisputeMsg
}

// Validate makes sure that this is sensible
func (m *OpenDisputeMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return validateEscrowID(m.EscrowID)
}

// Path fulfills weave.Msg interface to allow routing
func (ReleaseMsg) Path() string {
	return pathReleaseMsg
}

// Validate makes sure that this is sensible
func (m *ReleaseMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return validateEscrowID(m.EscrowID)
}

// Path fulfills weave.Msg interface to allow routing
func (ResolveDisputeMsg) Path() string {
	return pathResolveDisputeMsg
}

// Validate makes sure that this is sensible
func (m *ResolveDisputeMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return validateEscrowID(m.EscrowID)
}

func (UpdateConfigurationMsg) Path() string {
	return pathUpdateConfiguration
}

func (m *UpdateConfigurationMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if m.Patch == nil {
		return errors.Wrap(errors.ErrEmpty, "patch")
	}
	if len(m.Patch.Owner) != 0 {
		if err := m.Patch.Owner.Validate(); err != nil {
			return errors.Wrap(err, "patch owner")
		}
	}
	for i, a := range m.Patch.Arbiters {
		if err := a.Validate(); err != nil {
			return errors.Wrapf(err, "patch arbiter #%d", i)
		}
	}
	return nil
}

// validateEscrowID returns an error if this is not a valid sequence key.
func validateEscrowID(id []byte) error {
	if len(id) != 8 {
		return errors.Wrapf(errors.ErrInput, "escrow id: %X", id)
	}
	return nil
}
