package receipt

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &VerifyAndPayMsg{}, migration.NoModification)
	migration.MustRegister(1, &PauseMsg{}, migration.NoModification)
	migration.MustRegister(1, &UnpauseMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

var _ weave.Msg = (*VerifyAndPayMsg)(nil)
var _ weave.Msg = (*PauseMsg)(nil)
var _ weave.Msg = (*UnpauseMsg)(nil)
var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

func (VerifyAndPayMsg) Path() string {
	return "receipt/verify_and_pay"
}

// Validate checks the message format only. Signature and nonce are checked
// by the handler, in order.
func (m *VerifyAndPayMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if m.Receipt == nil {
		return errors.Wrap(errors.ErrEmpty, "receipt")
	}
	if err := m.Receipt.Validate(); err != nil {
		return errors.Wrap(err, "receipt")
	}
	if len(m.Signature) == 0 {
		return errors.Wrap(errors.ErrEmpty, "signature")
	}
	return nil
}

func (r *UsageReceipt) Validate() error {
	if len(r.AssetID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "asset id")
	}
	if r.Amount == nil {
		return errors.Wrap(errors.ErrEmpty, "amount")
	}
	if err := r.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !r.Amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "amount must be positive")
	}
	if len(r.Payer) == 0 {
		return errors.Wrap(errors.ErrEmpty, "payer")
	}
	if err := r.Payer.Validate(); err != nil {
		return errors.Wrap(err, "payer")
	}
	if err := r.Deadline.Validate(); err != nil {
		return errors.Wrap(err, "deadline")
	}
	return nil
}

func (PauseMsg) Path() string {
	return "receipt/pause"
}

func (m *PauseMsg) Validate() error {
	return errors.Wrap(m.Metadata.Validate(), "metadata")
}

func (UnpauseMsg) Path() string {
	return "receipt/unpause"
}

func (m *UnpauseMsg) Validate() error {
	return errors.Wrap(m.Metadata.Validate(), "metadata")
}

func (UpdateConfigurationMsg) Path() string {
	return "receipt/update_configuration"
}

func (m *UpdateConfigurationMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if m.Patch == nil {
		return errors.Wrap(errors.ErrEmpty, "patch")
	}
	if m.Patch.Paused {
		return errors.Wrap(errors.ErrInput, "pause state is changed by the pauser only")
	}
	for i, v := range m.Patch.Verifiers {
		if err := v.Validate(); err != nil {
			return errors.Wrapf(err, "patch verifier #%d", i)
		}
	}
	for _, a := range []weave.Address{m.Patch.Owner, m.Patch.Pauser} {
		if len(a) != 0 {
			if err := a.Validate(); err != nil {
				return errors.Wrap(err, "patch address")
			}
		}
	}
	return nil
}
