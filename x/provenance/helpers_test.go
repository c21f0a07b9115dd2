package provenance

import (
	"encoding/binary"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
)

// directoryStub is an in memory directory. Assets are indexed by their
// sequence value.
type directoryStub struct {
	owners       map[uint64]weave.Address
	contributors []weave.Address
}

var _ Directory = (*directoryStub)(nil)

func (d *directoryStub) AssetOwner(db weave.ReadOnlyKVStore, assetID []byte) (weave.Address, error) {
	owner, ok := d.owners[binary.BigEndian.Uint64(pad(assetID))]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "asset %X", assetID)
	}
	return owner, nil
}

func (d *directoryStub) AssetExists(db weave.ReadOnlyKVStore, assetID []byte) (bool, error) {
	_, ok := d.owners[binary.BigEndian.Uint64(pad(assetID))]
	return ok, nil
}

func (d *directoryStub) IsContributor(db weave.ReadOnlyKVStore, addr weave.Address) (bool, error) {
	for _, c := range d.contributors {
		if c.Equals(addr) {
			return true, nil
		}
	}
	return false, nil
}

func pad(b []byte) []byte {
	if len(b) >= 8 {
		return b[len(b)-8:]
	}
	return append(make([]byte, 8-len(b)), b...)
}

func seq(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}
