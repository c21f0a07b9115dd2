package receipt

import (
	"github.com/attribchain/attrib/codec"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
)

// UsageReceipt is a payment intent signed by the payer. It is never stored,
// only its effects are.
type UsageReceipt struct {
	AssetID []byte     `protobuf:"bytes,1,opt,name=asset_id,json=assetId,proto3" json:"asset_id,omitempty"`
	Amount  *coin.Coin `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
	// Payer is the address of the secp256k1 key that signed the receipt.
	Payer weave.Address `protobuf:"bytes,3,opt,name=payer,proto3,casttype=github.com/iov-one/weave.Address" json:"payer,omitempty"`
	// Nonce must be equal to the payer's expected nonce.
	Nonce    uint64         `protobuf:"varint,4,opt,name=nonce,proto3" json:"nonce,omitempty"`
	Deadline weave.UnixTime `protobuf:"varint,5,opt,name=deadline,proto3,casttype=github.com/iov-one/weave.UnixTime" json:"deadline,omitempty"`
}

// PayerNonce is the next nonce expected from a payer.
type PayerNonce struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Nonce    uint64          `protobuf:"varint,2,opt,name=nonce,proto3" json:"nonce,omitempty"`
}

// Configuration of the receipt verifier.
type Configuration struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// Owner is allowed to update the configuration.
	Owner weave.Address `protobuf:"bytes,2,opt,name=owner,proto3,casttype=github.com/iov-one/weave.Address" json:"owner,omitempty"`
	// Verifiers are allowed to submit signed receipts.
	Verifiers []weave.Address `protobuf:"bytes,3,rep,name=verifiers,proto3,casttype=github.com/iov-one/weave.Address" json:"verifiers,omitempty"`
	// Pauser toggles the Paused flag.
	Pauser weave.Address `protobuf:"bytes,4,opt,name=pauser,proto3,casttype=github.com/iov-one/weave.Address" json:"pauser,omitempty"`
	Paused bool          `protobuf:"varint,5,opt,name=paused,proto3" json:"paused,omitempty"`
	// DomainName and DomainVersion are part of the signing domain.
	DomainName    string `protobuf:"bytes,6,opt,name=domain_name,json=domainName,proto3" json:"domain_name,omitempty"`
	DomainVersion string `protobuf:"bytes,7,opt,name=domain_version,json=domainVersion,proto3" json:"domain_version,omitempty"`
}

// VerifyAndPayMsg submits a receipt together with the payer signature.
type VerifyAndPayMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Receipt  *UsageReceipt   `protobuf:"bytes,2,opt,name=receipt,proto3" json:"receipt,omitempty"`
	// Signature is a 65 bytes compact secp256k1 signature.
	Signature []byte `protobuf:"bytes,3,opt,name=signature,proto3" json:"signature,omitempty"`
}

// PauseMsg halts receipt verification.
type PauseMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
}

// UnpauseMsg resumes receipt verification.
type UnpauseMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
}

// UpdateConfigurationMsg patches the receipt verifier configuration.
type UpdateConfigurationMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Patch    *Configuration  `protobuf:"bytes,2,opt,name=patch,proto3" json:"patch,omitempty"`
}

type (
	payerNonceWire             PayerNonce
	configurationWire          Configuration
	verifyAndPayMsgWire        VerifyAndPayMsg
	pauseMsgWire               PauseMsg
	unpauseMsgWire             UnpauseMsg
	updateConfigurationMsgWire UpdateConfigurationMsg
)

func (m *payerNonceWire) Reset()         { *m = payerNonceWire{} }
func (m *payerNonceWire) String() string { return codec.String(m) }
func (*payerNonceWire) ProtoMessage()    {}

func (m *configurationWire) Reset()         { *m = configurationWire{} }
func (m *configurationWire) String() string { return codec.String(m) }
func (*configurationWire) ProtoMessage()    {}

func (m *verifyAndPayMsgWire) Reset()         { *m = verifyAndPayMsgWire{} }
func (m *verifyAndPayMsgWire) String() string { return codec.String(m) }
func (*verifyAndPayMsgWire) ProtoMessage()    {}

func (m *pauseMsgWire) Reset()         { *m = pauseMsgWire{} }
func (m *pauseMsgWire) String() string { return codec.String(m) }
func (*pauseMsgWire) ProtoMessage()    {}

func (m *unpauseMsgWire) Reset()         { *m = unpauseMsgWire{} }
func (m *unpauseMsgWire) String() string { return codec.String(m) }
func (*unpauseMsgWire) ProtoMessage()    {}

func (m *updateConfigurationMsgWire) Reset()         { *m = updateConfigurationMsgWire{} }
func (m *updateConfigurationMsgWire) String() string { return codec.String(m) }
func (*updateConfigurationMsgWire) ProtoMessage()    {}

func (m *PayerNonce) Marshal() ([]byte, error) {
	return codec.Marshal((*payerNonceWire)(m))
}

func (m *PayerNonce) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*payerNonceWire)(m))
}

func (m *PayerNonce) GetMetadata() *weave.Metadata {
	return m.Metadata
}

func (m *Configuration) Marshal() ([]byte, error) {
	return codec.Marshal((*configurationWire)(m))
}

func (m *Configuration) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*configurationWire)(m))
}

func (m *Configuration) GetMetadata() *weave.Metadata {
	return m.Metadata
}

func (m *Configuration) GetOwner() weave.Address {
	return m.Owner
}

func (m *VerifyAndPayMsg) Marshal() ([]byte, error) {
	return codec.Marshal((*verifyAndPayMsgWire)(m))
}

func (m *VerifyAndPayMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*verifyAndPayMsgWire)(m))
}

func (m *VerifyAndPayMsg) GetMetadata() *weave.Metadata {
	return m.Metadata
}

func (m *PauseMsg) Marshal() ([]byte, error) {
	return codec.Marshal((*pauseMsgWire)(m))
}

func (m *PauseMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*pauseMsgWire)(m))
}

func (m *PauseMsg) GetMetadata() *weave.Metadata {
	return m.Metadata
}

func (m *UnpauseMsg) Marshal() ([]byte, error) {
	return codec.Marshal((*unpauseMsgWire)(m))
}

func (m *UnpauseMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*unpauseMsgWire)(m))
}

func (m *UnpauseMsg) GetMetadata() *weave.Metadata {
	return m.Metadata
}

func (m *UpdateConfigurationMsg) Marshal() ([]byte, error) {
	return codec.Marshal((*updateConfigurationMsgWire)(m))
}

func (m *UpdateConfigurationMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*updateConfigurationMsgWire)(m))
}

func (m *UpdateConfigurationMsg) GetMetadata() *weave.Metadata {
	return m.Metadata
}
