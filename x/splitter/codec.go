package splitter

import (
	"github.com/attribchain/attrib/codec"
	"github.com/iov-one/weave"
)

// Distribution is the payout list materialized from a finalized graph.
type Distribution struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	AssetID  []byte          `protobuf:"bytes,2,opt,name=asset_id,json=assetId,proto3" json:"asset_id,omitempty"`
	// Payees are in the order of the graph edges they were created from.
	Payees []*Payee `protobuf:"bytes,3,rep,name=payees,proto3" json:"payees,omitempty"`
	// Address of the splitter account that collects the revenue.
	Address weave.Address `protobuf:"bytes,4,opt,name=address,proto3,casttype=github.com/iov-one/weave.Address" json:"address,omitempty"`
}

// Payee is a single entry of a distribution. Shares are relative to the sum
// of all shares of the distribution.
type Payee struct {
	Address weave.Address `protobuf:"bytes,1,opt,name=address,proto3,casttype=github.com/iov-one/weave.Address" json:"address,omitempty"`
	Share   int32         `protobuf:"varint,2,opt,name=share,proto3" json:"share,omitempty"`
}

// CreateSplitterMsg materializes the distribution of an asset.
type CreateSplitterMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	AssetID  []byte          `protobuf:"bytes,2,opt,name=asset_id,json=assetId,proto3" json:"asset_id,omitempty"`
}

// DistributeMsg pays the splitter account balance out to the payees.
type DistributeMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	AssetID  []byte          `protobuf:"bytes,2,opt,name=asset_id,json=assetId,proto3" json:"asset_id,omitempty"`
}

type (
	distributionWire      Distribution
	createSplitterMsgWire CreateSplitterMsg
	distributeMsgWire     DistributeMsg
)

func (m *distributionWire) Reset()         { *m = distributionWire{} }
func (m *distributionWire) String() string { return codec.String(m) }
func (*distributionWire) ProtoMessage()    {}

func (m *createSplitterMsgWire) Reset()         { *m = createSplitterMsgWire{} }
func (m *createSplitterMsgWire) String() string { return codec.String(m) }
func (*createSplitterMsgWire) ProtoMessage()    {}

func (m *distributeMsgWire) Reset()         { *m = distributeMsgWire{} }
func (m *distributeMsgWire) String() string { return codec.String(m) }
func (*distributeMsgWire) ProtoMessage()    {}

func (m *Distribution) Marshal() ([]byte, error) {
	return codec.Marshal((*distributionWire)(m))
}

func (m *Distribution) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*distributionWire)(m))
}

func (m *Distribution) GetMetadata() *weave.Metadata {
	return m.Metadata
}

func (m *CreateSplitterMsg) Marshal() ([]byte, error) {
	return codec.Marshal((*createSplitterMsgWire)(m))
}

func (m *CreateSplitterMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*createSplitterMsgWire)(m))
}

func (m *CreateSplitterMsg) GetMetadata() *weave.Metadata {
	return m.Metadata
}

func (m *DistributeMsg) Marshal() ([]byte, error) {
	return codec.Marshal((*distributeMsgWire)(m))
}

func (m *DistributeMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*distributeMsgWire)(m))
}

func (m *DistributeMsg) GetMetadata() *weave.Metadata {
	return m.Metadata
}
