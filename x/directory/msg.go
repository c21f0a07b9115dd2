package directory

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &RegisterAssetMsg{}, migration.NoModification)
	migration.MustRegister(1, &TransferAssetMsg{}, migration.NoModification)
	migration.MustRegister(1, &GrantContributorMsg{}, migration.NoModification)
	migration.MustRegister(1, &RevokeContributorMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

var _ weave.Msg = (*RegisterAssetMsg)(nil)
var _ weave.Msg = (*TransferAssetMsg)(nil)
var _ weave.Msg = (*GrantContributorMsg)(nil)
var _ weave.Msg = (*RevokeContributorMsg)(nil)
var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

func (RegisterAssetMsg) Path() string {
	return "directory/register_asset"
}

func (m *RegisterAssetMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	// Owner defaults to the main signer.
	if m.Owner != nil {
		if err := m.Owner.Validate(); err != nil {
			return errors.Wrap(err, "owner")
		}
	}
	return nil
}

func (TransferAssetMsg) Path() string {
	return "directory/transfer_asset"
}

func (m *TransferAssetMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := ValidateAssetID(m.AssetID); err != nil {
		return err
	}
	if err := validateAddress("new owner", m.NewOwner); err != nil {
		return err
	}
	return nil
}

func (GrantContributorMsg) Path() string {
	return "directory/grant_contributor"
}

func (m *GrantContributorMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := validateAddress("address", m.Address); err != nil {
		return err
	}
	return nil
}

func (RevokeContributorMsg) Path() string {
	return "directory/revoke_contributor"
}

func (m *RevokeContributorMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := validateAddress("address", m.Address); err != nil {
		return err
	}
	return nil
}

func (UpdateConfigurationMsg) Path() string {
	return "directory/update_configuration"
}

func (m *UpdateConfigurationMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if m.Patch == nil {
		return errors.Wrap(errors.ErrEmpty, "patch")
	}
	// Zero fields of a patch are left unchanged.
	if len(m.Patch.Owner) != 0 {
		if err := m.Patch.Owner.Validate(); err != nil {
			return errors.Wrap(err, "patch owner")
		}
	}
	if len(m.Patch.Admin) != 0 {
		if err := m.Patch.Admin.Validate(); err != nil {
			return errors.Wrap(err, "patch admin")
		}
	}
	return nil
}

// ValidateAssetID returns an error if given value cannot be an asset
// identifier. Asset identifiers are sequence values.
func ValidateAssetID(id []byte) error {
	if len(id) != 8 {
		return errors.Wrapf(errors.ErrInput, "asset id: %X", id)
	}
	return nil
}

// validateAddress rejects the zero identity with ErrEmpty, any other
// malformed value with the address validation error.
func validateAddress(field string, a weave.Address) error {
	if len(a) == 0 {
		return errors.Wrap(errors.ErrEmpty, field)
	}
	if err := a.Validate(); err != nil {
		return errors.Wrap(err, field)
	}
	return nil
}
