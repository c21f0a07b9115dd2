package directory

import (
	"github.com/attribchain/attrib/codec"
	"github.com/iov-one/weave"
)

// Asset is the registry entry of a single asset. Only the owner is tracked,
// metadata management of the asset itself lives outside of this
// application.
type Asset struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// Owner is the only address allowed to attribute the asset.
	Owner weave.Address `protobuf:"bytes,2,opt,name=owner,proto3,casttype=github.com/iov-one/weave.Address" json:"owner,omitempty"`
}

// Contributor records that an address holds the contributor capability.
type Contributor struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Address  weave.Address   `protobuf:"bytes,2,opt,name=address,proto3,casttype=github.com/iov-one/weave.Address" json:"address,omitempty"`
	Active   bool            `protobuf:"varint,3,opt,name=active,proto3" json:"active,omitempty"`
}

// Configuration of the directory extension.
type Configuration struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// Owner is allowed to update the configuration.
	Owner weave.Address `protobuf:"bytes,2,opt,name=owner,proto3,casttype=github.com/iov-one/weave.Address" json:"owner,omitempty"`
	// Admin grants and revokes the contributor capability.
	Admin weave.Address `protobuf:"bytes,3,opt,name=admin,proto3,casttype=github.com/iov-one/weave.Address" json:"admin,omitempty"`
}

// RegisterAssetMsg creates a new asset. When owner is not provided, the
// main signer becomes the owner.
type RegisterAssetMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Owner    weave.Address   `protobuf:"bytes,2,opt,name=owner,proto3,casttype=github.com/iov-one/weave.Address" json:"owner,omitempty"`
}

// TransferAssetMsg changes the owner of an asset.
type TransferAssetMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	AssetID  []byte          `protobuf:"bytes,2,opt,name=asset_id,json=assetId,proto3" json:"asset_id,omitempty"`
	NewOwner weave.Address   `protobuf:"bytes,3,opt,name=new_owner,json=newOwner,proto3,casttype=github.com/iov-one/weave.Address" json:"new_owner,omitempty"`
}

// GrantContributorMsg gives the contributor capability to an address.
type GrantContributorMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Address  weave.Address   `protobuf:"bytes,2,opt,name=address,proto3,casttype=github.com/iov-one/weave.Address" json:"address,omitempty"`
}

// RevokeContributorMsg takes the contributor capability away.
type RevokeContributorMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Address  weave.Address   `protobuf:"bytes,2,opt,name=address,proto3,casttype=github.com/iov-one/weave.Address" json:"address,omitempty"`
}

// UpdateConfigurationMsg patches the directory configuration.
type UpdateConfigurationMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Patch    *Configuration  `protobuf:"bytes,2,opt,name=patch,proto3" json:"patch,omitempty"`
}

type (
	assetWire                  Asset
	contributorWire            Contributor
	configurationWire          Configuration
	registerAssetMsgWire       RegisterAssetMsg
	transferAssetMsgWire       TransferAssetMsg
	grantContributorMsgWire    GrantContributorMsg
	revokeContributorMsgWire   RevokeContributorMsg
	updateConfigurationMsgWire UpdateConfigurationMsg
)

func (m *assetWire) Reset()         { *m = assetWire{} }
func (m *assetWire) String() string { return codec.String(m) }
func (*assetWire) ProtoMessage()    {}

func (m *contributorWire) Reset()         { *m = contributorWire{} }
func (m *contributorWire) String() string { return codec.String(m) }
func (*contributorWire) ProtoMessage()    {}

func (m *configurationWire) Reset()         { *m = configurationWire{} }
func (m *configurationWire) String() string { return codec.String(m) }
func (*configurationWire) ProtoMessage()    {}

func (m *registerAssetMsgWire) Reset()         { *m = registerAssetMsgWire{} }
func (m *registerAssetMsgWire) String() string { return codec.String(m) }
func (*registerAssetMsgWire) ProtoMessage()    {}

func (m *transferAssetMsgWire) Reset()         { *m = transferAssetMsgWire{} }
func (m *transferAssetMsgWire) String() string { return codec.String(m) }
func (*transferAssetMsgWire) ProtoMessage()    {}

func (m *grantContributorMsgWire) Reset()         { *m = grantContributorMsgWire{} }
func (m *grantContributorMsgWire) String() string { return codec.String(m) }
func (*grantContributorMsgWire) ProtoMessage()    {}

func (m *revokeContributorMsgWire) Reset()         { *m = revokeContributorMsgWire{} }
func (m *revokeContributorMsgWire) String() string { return codec.String(m) }
func (*revokeContributorMsgWire) ProtoMessage()    {}

func (m *updateConfigurationMsgWire) Reset()         { *m = updateConfigurationMsgWire{} }
func (m *updateConfigurationMsgWire) String() string { return codec.String(m) }
func (*updateConfigurationMsgWire) ProtoMessage()    {}

func (m *Asset) Marshal() ([]byte, error) {
	return codec.Marshal((*assetWire)(m))
}

func (m *Asset) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*assetWire)(m))
}

func (m *Asset) GetMetadata() *weave.Metadata {
	return m.Metadata
}

func (m *Contributor) Marshal() ([]byte, error) {
	return codec.Marshal((*contributorWire)(m))
}

func (m *Contributor) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*contributorWire)(m))
}

func (m *Contributor) GetMetadata() *weave.Metadata {
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

func (m *RegisterAssetMsg) Marshal() ([]byte, error) {
	return codec.Marshal((*registerAssetMsgWire)(m))
}

func (m *RegisterAssetMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*registerAssetMsgWire)(m))
}

func (m *RegisterAssetMsg) GetMetadata() *weave.Metadata {
	return m.Metadata
}

func (m *TransferAssetMsg) Marshal() ([]byte, error) {
	return codec.Marshal((*transferAssetMsgWire)(m))
}

func (m *TransferAssetMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*transferAssetMsgWire)(m))
}

func (m *TransferAssetMsg) GetMetadata() *weave.Metadata {
	return m.Metadata
}

func (m *GrantContributorMsg) Marshal() ([]byte, error) {
	return codec.Marshal((*grantContributorMsgWire)(m))
}

func (m *GrantContributorMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*grantContributorMsgWire)(m))
}

func (m *GrantContributorMsg) GetMetadata() *weave.Metadata {
	return m.Metadata
}

func (m *RevokeContributorMsg) Marshal() ([]byte, error) {
	return codec.Marshal((*revokeContributorMsgWire)(m))
}

func (m *RevokeContributorMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*revokeContributorMsgWire)(m))
}

func (m *RevokeContributorMsg) GetMetadata() *weave.Metadata {
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
