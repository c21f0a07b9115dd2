package receipt

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &PayerNonce{}, migration.NoModification)
}

var _ orm.Model = (*PayerNonce)(nil)

func (n *PayerNonce) Validate() error {
	if err := n.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return nil
}

func (n *PayerNonce) Copy() orm.CloneableData {
	return &PayerNonce{
		Metadata: n.Metadata.Copy(),
		Nonce:    n.Nonce,
	}
}

// NewNonceBucket returns a bucket of payer nonces, keyed by the payer
// address.
func NewNonceBucket() orm.ModelBucket {
	b := orm.NewModelBucket("rnonce", &PayerNonce{})
	return migration.NewModelBucket("receipt", b)
}

// NextNonce returns the nonce that the next receipt of the payer must use.
// A payer that never paid expects 0.
func NextNonce(db weave.ReadOnlyKVStore, payer weave.Address) (uint64, error) {
	var n PayerNonce
	switch err := NewNonceBucket().One(db, payer, &n); {
	case err == nil:
		return n.Nonce, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, errors.Wrap(err, "cannot load nonce")
	}
}

// RegisterQuery will register the nonce bucket as "/nonces".
func RegisterQuery(qr weave.QueryRouter) {
	NewNonceBucket().Register("nonces", qr)
}
