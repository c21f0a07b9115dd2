package feepolicy

import (
	"github.com/attribchain/attrib/codec"
	"github.com/iov-one/weave"
)

// Configuration holds the fee charged on every released escrow payment.
type Configuration struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// Owner is allowed to update the configuration.
	Owner weave.Address `protobuf:"bytes,2,opt,name=owner,proto3,casttype=github.com/iov-one/weave.Address" json:"owner,omitempty"`
	// FeeBps is the fee rate in basis points, 10000 is the whole amount.
	FeeBps int32 `protobuf:"varint,3,opt,name=fee_bps,json=feeBps,proto3" json:"fee_bps,omitempty"`
	// Treasury receives the collected fees.
	Treasury weave.Address `protobuf:"bytes,4,opt,name=treasury,proto3,casttype=github.com/iov-one/weave.Address" json:"treasury,omitempty"`
}

// UpdateConfigurationMsg patches the fee policy configuration.
type UpdateConfigurationMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Patch    *Configuration  `protobuf:"bytes,2,opt,name=patch,proto3" json:"patch,omitempty"`
}

type (
	configurationWire          Configuration
	updateConfigurationMsgWire UpdateConfigurationMsg
)

func (m *configurationWire) Reset()         { *m = configurationWire{} }
func (m *configurationWire) String() string { return codec.String(m) }
func (*configurationWire) ProtoMessage()    {}

func (m *updateConfigurationMsgWire) Reset()         { *m = updateConfigurationMsgWire{} }
func (m *updateConfigurationMsgWire) String() string { return codec.String(m) }
func (*updateConfigurationMsgWire) ProtoMessage()    {}

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

func (m *UpdateConfigurationMsg) Marshal() ([]byte, error) {
	return codec.Marshal((*updateConfigurationMsgWire)(m))
}

func (m *UpdateConfigurationMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*updateConfigurationMsgWire)(m))
}

func (m *UpdateConfigurationMsg) GetMetadata() *weave.Metadata {
	return m.Metadata
}
