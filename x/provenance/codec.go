package provenance

import (
	"github.com/attribchain/attrib/codec"
	"github.com/iov-one/weave"
)

// Graph is the attribution graph of a single asset.
type Graph struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	AssetID  []byte          `protobuf:"bytes,2,opt,name=asset_id,json=assetId,proto3" json:"asset_id,omitempty"`
	// Edges are kept in the order they were added. Contributor and parent
	// edges share the list.
	Edges []*Edge `protobuf:"bytes,3,rep,name=edges,proto3" json:"edges,omitempty"`
	// TotalWeight is the sum of all edge weights, never above MaxWeight.
	TotalWeight int32 `protobuf:"varint,4,opt,name=total_weight,json=totalWeight,proto3" json:"total_weight,omitempty"`
	Finalized   bool  `protobuf:"varint,5,opt,name=finalized,proto3" json:"finalized,omitempty"`
}

// Edge attributes a weight either to a contributor or to a parent asset.
// Exactly one of Contributor and ParentAssetID is set.
type Edge struct {
	Contributor   weave.Address `protobuf:"bytes,1,opt,name=contributor,proto3,casttype=github.com/iov-one/weave.Address" json:"contributor,omitempty"`
	ParentAssetID []byte        `protobuf:"bytes,2,opt,name=parent_asset_id,json=parentAssetId,proto3" json:"parent_asset_id,omitempty"`
	Weight        int32         `protobuf:"varint,3,opt,name=weight,proto3" json:"weight,omitempty"`
}

// AddContributorEdgeMsg attributes a part of an asset to a contributor.
type AddContributorEdgeMsg struct {
	Metadata    *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	AssetID     []byte          `protobuf:"bytes,2,opt,name=asset_id,json=assetId,proto3" json:"asset_id,omitempty"`
	Contributor weave.Address   `protobuf:"bytes,3,opt,name=contributor,proto3,casttype=github.com/iov-one/weave.Address" json:"contributor,omitempty"`
	Weight      int32           `protobuf:"varint,4,opt,name=weight,proto3" json:"weight,omitempty"`
}

// AddParentEdgeMsg attributes a part of an asset to an upstream asset.
type AddParentEdgeMsg struct {
	Metadata      *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	ChildAssetID  []byte          `protobuf:"bytes,2,opt,name=child_asset_id,json=childAssetId,proto3" json:"child_asset_id,omitempty"`
	ParentAssetID []byte          `protobuf:"bytes,3,opt,name=parent_asset_id,json=parentAssetId,proto3" json:"parent_asset_id,omitempty"`
	Weight        int32           `protobuf:"varint,4,opt,name=weight,proto3" json:"weight,omitempty"`
}

// FinalizeGraphMsg locks the graph of an asset.
type FinalizeGraphMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	AssetID  []byte          `protobuf:"bytes,2,opt,name=asset_id,json=assetId,proto3" json:"asset_id,omitempty"`
}

type (
	graphWire                 Graph
	addContributorEdgeMsgWire AddContributorEdgeMsg
	addParentEdgeMsgWire      AddParentEdgeMsg
	finalizeGraphMsgWire      FinalizeGraphMsg
)

func (m *graphWire) Reset()         { *m = graphWire{} }
func (m *graphWire) String() string { return codec.String(m) }
func (*graphWire) ProtoMessage()    {}

func (m *addContributorEdgeMsgWire) Reset()         { *m = addContributorEdgeMsgWire{} }
func (m *addContributorEdgeMsgWire) String() string { return codec.String(m) }
func (*addContributorEdgeMsgWire) ProtoMessage()    {}

func (m *addParentEdgeMsgWire) Reset()         { *m = addParentEdgeMsgWire{} }
func (m *addParentEdgeMsgWire) String() string { return codec.String(m) }
func (*addParentEdgeMsgWire) ProtoMessage()    {}

func (m *finalizeGraphMsgWire) Reset()         { *m = finalizeGraphMsgWire{} }
func (m *finalizeGraphMsgWire) String() string { return codec.String(m) }
func (*finalizeGraphMsgWire) ProtoMessage()    {}

func (m *Graph) Marshal() ([]byte, error) {
	return codec.Marshal((*graphWire)(m))
}

func (m *Graph) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*graphWire)(m))
}

func (m *Graph) GetMetadata() *weave.Metadata {
	return m.Metadata
}

func (m *AddContributorEdgeMsg) Marshal() ([]byte, error) {
	return codec.Marshal((*addContributorEdgeMsgWire)(m))
}

func (m *AddContributorEdgeMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*addContributorEdgeMsgWire)(m))
}

func (m *AddContributorEdgeMsg) GetMetadata() *weave.Metadata {
	return m.Metadata
}

func (m *AddParentEdgeMsg) Marshal() ([]byte, error) {
	return codec.Marshal((*addParentEdgeMsgWire)(m))
}

func (m *AddParentEdgeMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*addParentEdgeMsgWire)(m))
}

func (m *AddParentEdgeMsg) GetMetadata() *weave.Metadata {
	return m.Metadata
}

func (m *FinalizeGraphMsg) Marshal() ([]byte, error) {
	return codec.Marshal((*finalizeGraphMsgWire)(m))
}

func (m *FinalizeGraphMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*finalizeGraphMsgWire)(m))
}

func (m *FinalizeGraphMsg) GetMetadata() *weave.Metadata {
	return m.Metadata
}
