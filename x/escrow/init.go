package escrow

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/gconf"
	"github.com/pkg/errors"
)

// Initializer loads the arbiter configuration from the genesis
// "conf.escrow" entry.
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

func (*Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, kv weave.KVStore) error {
	var conf Configuration
	if err := gconf.InitConfig(kv, opts, "escrow", &conf); err != nil {
		return errors.Wrap(err, "init config")
	}
	return nil
}
