package receipt

import (
	"bytes"
	"encoding/binary"

	"github.com/btcsuite/btcd/btcec"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"golang.org/x/crypto/sha3"
)

const (
	receiptType = "UsageReceipt(bytes assetId,int64 amountWhole,int64 amountFractional,string ticker,address payer,uint64 nonce,int64 deadline)"
	domainType  = "Domain(string name,string version,string chainId,address verifyingComponent)"

	// SignatureLength is the size of a compact recoverable signature.
	SignatureLength = 65
)

var (
	receiptTypeHash = keccak([]byte(receiptType))
	domainTypeHash  = keccak([]byte(domainType))
)

// Domain binds signatures to a single deployment of the verifier.
type Domain struct {
	Name    string
	Version string
	ChainID string
}

// VerifierAddress is the identity of the verifying component, part of every
// signing domain.
func VerifierAddress() weave.Address {
	return weave.NewCondition("receipt", "verifier", nil).Address()
}

// Separator returns the domain separator hash.
func (d Domain) Separator() []byte {
	return keccak(
		domainTypeHash,
		keccak([]byte(d.Name)),
		keccak([]byte(d.Version)),
		keccak([]byte(d.ChainID)),
		addressWord(VerifierAddress()),
	)
}

// StructHash returns the hash of the receipt fields, encoded as 32 bytes
// words.
func StructHash(r *UsageReceipt) []byte {
	var whole, frac int64
	var ticker string
	if r.Amount != nil {
		whole, frac, ticker = r.Amount.Whole, r.Amount.Fractional, r.Amount.Ticker
	}
	return keccak(
		receiptTypeHash,
		keccak(r.AssetID),
		intWord(whole),
		intWord(frac),
		keccak([]byte(ticker)),
		addressWord(r.Payer),
		uintWord(r.Nonce),
		intWord(int64(r.Deadline)),
	)
}

// Digest returns the hash that the payer signs for given receipt.
func Digest(d Domain, r *UsageReceipt) []byte {
	return keccak([]byte{0x19, 0x01}, d.Separator(), StructHash(r))
}

// Sign returns a compact recoverable signature of the digest.
func Sign(key *btcec.PrivateKey, digest []byte) ([]byte, error) {
	sig, err := btcec.SignCompact(btcec.S256(), key, digest, true)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return sig, nil
}

// RecoverPayer returns the address of the key that produced the signature.
func RecoverPayer(digest, sig []byte) (weave.Address, error) {
	if len(sig) != SignatureLength {
		return nil, errors.Wrapf(ErrInvalidSignature, "signature must be %d bytes", SignatureLength)
	}
	pub, _, err := btcec.RecoverCompact(btcec.S256(), sig, digest)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidSignature, err.Error())
	}
	return PayerAddress(pub), nil
}

// PayerAddress returns the payer identity of a public key.
func PayerAddress(pub *btcec.PublicKey) weave.Address {
	return weave.NewCondition("secp256k1", "pubkey", pub.SerializeCompressed()).Address()
}

func keccak(chunks ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, c := range chunks {
		h.Write(c)
	}
	return h.Sum(nil)
}

func uintWord(v uint64) []byte {
	w := make([]byte, 32)
	binary.BigEndian.PutUint64(w[24:], v)
	return w
}

// intWord encodes a signed value in two's complement, sign extended to 32
// bytes.
func intWord(v int64) []byte {
	w := uintWord(uint64(v))
	if v < 0 {
		copy(w[:24], bytes.Repeat([]byte{0xff}, 24))
	}
	return w
}

// addressWord left pads an address to 32 bytes.
func addressWord(a weave.Address) []byte {
	w := make([]byte, 32)
	if len(a) <= 32 {
		copy(w[32-len(a):], a)
	} else {
		copy(w, keccak(a))
	}
	return w
}
