package receipt

import (
	"testing"

	"github.com/btcsuite/btcd/btcec"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/weavetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndRecover(t *testing.T) {
	key, err := btcec.NewPrivateKey(btcec.S256())
	require.NoError(t, err)
	payer := PayerAddress(key.PubKey())

	domain := Domain{Name: "attrib", Version: "1", ChainID: "test-chain"}
	r := &UsageReceipt{
		AssetID:  seq(1),
		Amount:   coin.NewCoinp(100, 0, "IOV"),
		Payer:    payer,
		Nonce:    0,
		Deadline: 1700000000,
	}

	sig, err := Sign(key, Digest(domain, r))
	require.NoError(t, err)
	require.Len(t, sig, SignatureLength)

	got, err := RecoverPayer(Digest(domain, r), sig)
	require.NoError(t, err)
	assert.Equal(t, payer, got)

	// Any change of the signed content yields a different signer.
	other := *r
	other.Nonce = 1
	got, err = RecoverPayer(Digest(domain, &other), sig)
	if err == nil {
		assert.NotEqual(t, payer, got)
	}

	otherDomain := domain
	otherDomain.ChainID = "other-chain"
	got, err = RecoverPayer(Digest(otherDomain, r), sig)
	if err == nil {
		assert.NotEqual(t, payer, got)
	}
}

func TestRecoverPayerMalformed(t *testing.T) {
	digest := Digest(Domain{Name: "attrib", Version: "1"}, &UsageReceipt{Payer: weavetest.NewCondition().Address()})

	_, err := RecoverPayer(digest, []byte{1, 2, 3})
	require.True(t, ErrInvalidSignature.Is(err))

	_, err = RecoverPayer(digest, make([]byte, SignatureLength))
	require.True(t, ErrInvalidSignature.Is(err))
}

func TestDigestIsDeterministic(t *testing.T) {
	domain := Domain{Name: "attrib", Version: "1", ChainID: "c"}
	r := &UsageReceipt{
		AssetID:  seq(3),
		Amount:   coin.NewCoinp(1, 5, "IOV"),
		Payer:    weavetest.NewCondition().Address(),
		Nonce:    7,
		Deadline: 42,
	}
	assert.Equal(t, Digest(domain, r), Digest(domain, r))
	assert.Len(t, Digest(domain, r), 32)
	assert.NotEqual(t, StructHash(r), domain.Separator())
}

func TestIntWord(t *testing.T) {
	w := intWord(-1)
	for i, b := range w {
		require.Equalf(t, byte(0xff), b, "byte %d", i)
	}
	w = intWord(258)
	assert.Equal(t, byte(1), w[30])
	assert.Equal(t, byte(2), w[31])
	assert.Equal(t, byte(0), w[0])
}
