package feepolicy

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x"
)

// MaxFeeBps is the fee rate that takes the whole amount.
const MaxFeeBps = 10000

func init() {
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

func (c *Configuration) Validate() error {
	if err := c.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if len(c.Owner) != 0 {
		if err := c.Owner.Validate(); err != nil {
			return errors.Wrap(err, "owner")
		}
	}
	if err := validateFeeBps(c.FeeBps); err != nil {
		return err
	}
	if err := c.Treasury.Validate(); err != nil {
		return errors.Wrap(err, "treasury")
	}
	return nil
}

func validateFeeBps(bps int32) error {
	if bps < 0 || bps > MaxFeeBps {
		return errors.Wrapf(errors.ErrInput, "fee bps must be within 0..%d, got %d", MaxFeeBps, bps)
	}
	return nil
}

var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

func (UpdateConfigurationMsg) Path() string {
	return "feepolicy/update_configuration"
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
	if len(m.Patch.Treasury) != 0 {
		if err := m.Patch.Treasury.Validate(); err != nil {
			return errors.Wrap(err, "patch treasury")
		}
	}
	return validateFeeBps(m.Patch.FeeBps)
}

// RegisterRoutes registers the configuration update handler.
func RegisterRoutes(r weave.Registry, auth x.Authenticator) {
	r = migration.SchemaMigratingRegistry("feepolicy", r)
	r.Handle(&UpdateConfigurationMsg{}, NewConfigHandler(auth))
}

func NewConfigHandler(auth x.Authenticator) weave.Handler {
	var conf Configuration
	return gconf.NewUpdateConfigurationHandler("feepolicy", &conf, auth)
}
