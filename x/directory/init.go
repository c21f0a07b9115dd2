package directory

import (
	"fmt"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
)

// Initializer fulfils the Initializer interface to load assets, contributors
// and the configuration from the genesis file.
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

// FromGenesis registers assets in the order they are declared, so the first
// genesis asset gets the identifier 1.
func (*Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, kv weave.KVStore) error {
	var conf Configuration
	if err := gconf.InitConfig(kv, opts, "directory", &conf); err != nil {
		return errors.Wrap(err, "init config")
	}

	var directory struct {
		Assets []struct {
			Owner weave.Address `json:"owner"`
		} `json:"assets"`
		Contributors []weave.Address `json:"contributors"`
	}
	if err := opts.ReadOptions("directory", &directory); err != nil {
		return errors.Wrap(err, "cannot load directory")
	}

	assets := NewAssetBucket()
	for i, a := range directory.Assets {
		asset := Asset{
			Metadata: &weave.Metadata{Schema: 1},
			Owner:    a.Owner,
		}
		if err := asset.Validate(); err != nil {
			return errors.Wrap(err, fmt.Sprintf("asset #%d is invalid", i))
		}
		if _, err := assets.Put(kv, nil, &asset); err != nil {
			return errors.Wrap(err, fmt.Sprintf("cannot store #%d asset", i))
		}
	}

	contribs := NewContributorBucket()
	for i, addr := range directory.Contributors {
		c := Contributor{
			Metadata: &weave.Metadata{Schema: 1},
			Address:  addr,
			Active:   true,
		}
		if err := c.Validate(); err != nil {
			return errors.Wrap(err, fmt.Sprintf("contributor #%d is invalid", i))
		}
		if _, err := contribs.Put(kv, addr, &c); err != nil {
			return errors.Wrap(err, fmt.Sprintf("cannot store #%d contributor", i))
		}
	}
	return nil
}
