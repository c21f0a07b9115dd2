package escrow

import (
	"github.com/attribchain/attrib/codec"
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
)

// Status of an escrow item.
type Status int32

const (
	Status_Invalid  Status = 0
	Status_Held     Status = 1
	Status_Disputed Status = 2
	Status_Released Status = 3
	Status_Refunded Status = 4
)

var Status_name = map[int32]string{
	0: "INVALID",
	1: "HELD",
	2: "DISPUTED",
	3: "RELEASED",
	4: "REFUNDED",
}

var Status_value = map[string]int32{
	"INVALID":  0,
	"HELD":     1,
	"DISPUTED": 2,
	"RELEASED": 3,
	"REFUNDED": 4,
}

func (s Status) String() string {
	return proto.EnumName(Status_name, int32(s))
}

func init() {
	proto.RegisterEnum("attrib.escrow.Status", Status_name, Status_value)
}

// Item is a single payment held in escrow.
type Item struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Payer    weave.Address   `protobuf:"bytes,2,opt,name=payer,proto3,casttype=github.com/iov-one/weave.Address" json:"payer,omitempty"`
	AssetID  []byte          `protobuf:"bytes,3,opt,name=asset_id,json=assetId,proto3" json:"asset_id,omitempty"`
	Amount   *coin.Coin      `protobuf:"bytes,4,opt,name=amount,proto3" json:"amount,omitempty"`
	// Splitter is the account receiving the released amount minus the fee.
	Splitter weave.Address `protobuf:"bytes,5,opt,name=splitter,proto3,casttype=github.com/iov-one/weave.Address" json:"splitter,omitempty"`
	// ReleaseAt is the end of the hold window.
	ReleaseAt weave.UnixTime `protobuf:"varint,6,opt,name=release_at,json=releaseAt,proto3,casttype=github.com/iov-one/weave.UnixTime" json:"release_at,omitempty"`
	Status    Status         `protobuf:"varint,7,opt,name=status,proto3,enum=attrib.escrow.Status" json:"status,omitempty"`
	// Address of the custody account holding the amount.
	Address weave.Address `protobuf:"bytes,8,opt,name=address,proto3,casttype=github.com/iov-one/weave.Address" json:"address,omitempty"`
}

// Configuration of the escrow extension.
type Configuration struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// Owner is allowed to update the configuration.
	Owner weave.Address `protobuf:"bytes,2,opt,name=owner,proto3,casttype=github.com/iov-one/weave.Address" json:"owner,omitempty"`
	// Arbiters resolve disputes.
	Arbiters []weave.Address `protobuf:"bytes,3,rep,name=arbiters,proto3,casttype=github.com/iov-one/weave.Address" json:"arbiters,omitempty"`
}

// OpenDisputeMsg is sent by the payer to stop the release of an item.
type OpenDisputeMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	EscrowID []byte          `protobuf:"bytes,2,opt,name=escrow_id,json=escrowId,proto3" json:"escrow_id,omitempty"`
}

// ReleaseMsg settles an item after its hold window.
type ReleaseMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	EscrowID []byte          `protobuf:"bytes,2,opt,name=escrow_id,json=escrowId,proto3" json:"escrow_id,omitempty"`
}

// ResolveDisputeMsg is the arbiter decision on a disputed item.
type ResolveDisputeMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	EscrowID []byte          `protobuf:"bytes,2,opt,name=escrow_id,json=escrowId,proto3" json:"escrow_id,omitempty"`
	// Refund returns the whole amount to the payer. Otherwise the item is
	// settled.
	Refund bool `protobuf:"varint,3,opt,name=refund,proto3" json:"refund,omitempty"`
}

// UpdateConfigurationMsg patches the escrow configuration.
type UpdateConfigurationMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Patch    *Configuration  `protobuf:"bytes,2,opt,name=patch,proto3" json:"patch,omitempty"`
}

type (
	itemWire                   Item
	configurationWire          Configuration
	openDisputeMsgWire         OpenDisputeMsg
	releaseMsgWire             ReleaseMsg
	resolveDisputeMsgWire      ResolveDisputeMsg
	updateConfigurationMsgWire UpdateConfigurationMsg
)

func (m *itemWire) Reset()         { *m = itemWire{} }
func (m *itemWire) String() string { return codec.String(m) }
func (*itemWire) ProtoMessage()    {}

func (m *configurationWire) Reset()         { *m = configurationWire{} }
func (m *configurationWire) String() string { return codec.String(m) }
func (*configurationWire) ProtoMessage()    {}

func (m *openDisputeMsgWire) Reset()         { *m = openDisputeMsgWire{} }
func (m *openDisputeMsgWire) String() string { return codec.String(m) }
func (*openDisputeMsgWire) ProtoMessage()    {}

func (m *releaseMsgWire) Reset()         { *m = releaseMsgWire{} }
func (m *releaseMsgWire) String() string { return codec.String(m) }
func (*releaseMsgWire) ProtoMessage()    {}

func (m *resolveDisputeMsgWire) Reset()         { *m = resolveDisputeMsgWire{} }
func (m *resolveDisputeMsgWire) String() string { return codec.String(m) }
func (*resolveDisputeMsgWire) ProtoMessage()    {}

func (m *updateConfigurationMsgWire) Reset()         { *m = updateConfigurationMsgWire{} }
func (m *updateConfigurationMsgWire) String() string { return codec.String(m) }
func (*updateConfigurationMsgWire) ProtoMessage()    {}

func (m *Item) Marshal() ([]byte, error) {
	return codec.Marshal((*itemWire)(m))
}

func (m *Item) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*itemWire)(m))
}

func (m *Item) GetMetadata() *weave.Metadata {
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

func (m *OpenDisputeMsg) Marshal() ([]byte, error) {
	return codec.Marshal((*openDisputeMsgWire)(m))
}

func (m *OpenDisputeMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*openDisputeMsgWire)(m))
}

func (m *OpenDisputeMsg) GetMetadata() *weave.Metadata {
	return m.Metadata
}

func (m *ReleaseMsg) Marshal() ([]byte, error) {
	return codec.Marshal((*releaseMsgWire)(m))
}

func (m *ReleaseMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*releaseMsgWire)(m))
}

func (m *ReleaseMsg) GetMetadata() *weave.Metadata {
	return m.Metadata
}

func (m *ResolveDisputeMsg) Marshal() ([]byte, error) {
	return codec.Marshal((*resolveDisputeMsgWire)(m))
}

func (m *ResolveDisputeMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*resolveDisputeMsgWire)(m))
}

func (m *ResolveDisputeMsg) GetMetadata() *weave.Metadata {
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
