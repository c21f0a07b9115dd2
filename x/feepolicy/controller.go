package feepolicy

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
)

// Controller exposes the current fee policy.
type Controller interface {
	CurrentFeeBps(db weave.ReadOnlyKVStore) (int32, error)
	TreasuryDestination(db weave.ReadOnlyKVStore) (weave.Address, error)
}

type controller struct{}

// NewController returns a controller reading the gconf stored policy.
func NewController() Controller {
	return controller{}
}

func (controller) CurrentFeeBps(db weave.ReadOnlyKVStore) (int32, error) {
	conf, err := load(db)
	if err != nil {
		return 0, err
	}
	return conf.FeeBps, nil
}

func (controller) TreasuryDestination(db weave.ReadOnlyKVStore) (weave.Address, error) {
	conf, err := load(db)
	if err != nil {
		return nil, err
	}
	return conf.Treasury, nil
}

func load(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, "feepolicy", &conf); err != nil {
		return nil, errors.Wrap(err, "load fee policy")
	}
	return &conf, nil
}
