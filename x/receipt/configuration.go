package receipt

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
)

func (c *Configuration) Validate() error {
	if err := c.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if len(c.Owner) != 0 {
		if err := c.Owner.Validate(); err != nil {
			return errors.Wrap(err, "owner")
		}
	}
	for i, v := range c.Verifiers {
		if err := v.Validate(); err != nil {
			return errors.Wrapf(err, "verifier #%d", i)
		}
	}
	if err := c.Pauser.Validate(); err != nil {
		return errors.Wrap(err, "pauser")
	}
	if c.DomainName == "" {
		return errors.Wrap(errors.ErrEmpty, "domain name")
	}
	if c.DomainVersion == "" {
		return errors.Wrap(errors.ErrEmpty, "domain version")
	}
	return nil
}

// IsVerifier returns true if the address holds the verifier capability.
func (c *Configuration) IsVerifier(addr weave.Address) bool {
	for _, v := range c.Verifiers {
		if v.Equals(addr) {
			return true
		}
	}
	return false
}

// Domain returns the signing domain for given chain.
func (c *Configuration) Domain(chainID string) Domain {
	return Domain{
		Name:    c.DomainName,
		Version: c.DomainVersion,
		ChainID: chainID,
	}
}

func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, "receipt", &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}
