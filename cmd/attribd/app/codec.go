package attribd

import (
	"github.com/attribchain/attrib/codec"
	"github.com/attribchain/attrib/x/directory"
	"github.com/attribchain/attrib/x/escrow"
	"github.com/attribchain/attrib/x/feepolicy"
	"github.com/attribchain/attrib/x/provenance"
	"github.com/attribchain/attrib/x/receipt"
	"github.com/attribchain/attrib/x/splitter"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"
)

// Tx contains the message. Exactly one of the message fields must be set.
type Tx struct {
	// Fees are optional, the chain may require a minimal fee.
	Fees       *cash.FeeInfo        `protobuf:"bytes,1,opt,name=fees,proto3" json:"fees,omitempty"`
	Signatures []*sigs.StdSignature `protobuf:"bytes,2,rep,name=signatures,proto3" json:"signatures,omitempty"`

	CashSendMsg                     *cash.SendMsg                     `protobuf:"bytes,51,opt,name=cash_send_msg,json=cashSendMsg,proto3" json:"cash_send_msg,omitempty"`
	MigrationUpgradeSchemaMsg       *migration.UpgradeSchemaMsg       `protobuf:"bytes,52,opt,name=migration_upgrade_schema_msg,json=migrationUpgradeSchemaMsg,proto3" json:"migration_upgrade_schema_msg,omitempty"`
	DirectoryRegisterAssetMsg       *directory.RegisterAssetMsg       `protobuf:"bytes,60,opt,name=directory_register_asset_msg,json=directoryRegisterAssetMsg,proto3" json:"directory_register_asset_msg,omitempty"`
	DirectoryTransferAssetMsg       *directory.TransferAssetMsg       `protobuf:"bytes,61,opt,name=directory_transfer_asset_msg,json=directoryTransferAssetMsg,proto3" json:"directory_transfer_asset_msg,omitempty"`
	DirectoryGrantContributorMsg    *directory.GrantContributorMsg    `protobuf:"bytes,62,opt,name=directory_grant_contributor_msg,json=directoryGrantContributorMsg,proto3" json:"directory_grant_contributor_msg,omitempty"`
	DirectoryRevokeContributorMsg   *directory.RevokeContributorMsg   `protobuf:"bytes,63,opt,name=directory_revoke_contributor_msg,json=directoryRevokeContributorMsg,proto3" json:"directory_revoke_contributor_msg,omitempty"`
	DirectoryUpdateConfigurationMsg *directory.UpdateConfigurationMsg `protobuf:"bytes,64,opt,name=directory_update_configuration_msg,json=directoryUpdateConfigurationMsg,proto3" json:"directory_update_configuration_msg,omitempty"`
	ProvenanceAddContributorEdgeMsg *provenance.AddContributorEdgeMsg `protobuf:"bytes,70,opt,name=provenance_add_contributor_edge_msg,json=provenanceAddContributorEdgeMsg,proto3" json:"provenance_add_contributor_edge_msg,omitempty"`
	ProvenanceAddParentEdgeMsg      *provenance.AddParentEdgeMsg      `protobuf:"bytes,71,opt,name=provenance_add_parent_edge_msg,json=provenanceAddParentEdgeMsg,proto3" json:"provenance_add_parent_edge_msg,omitempty"`
	ProvenanceFinalizeGraphMsg      *provenance.FinalizeGraphMsg      `protobuf:"bytes,72,opt,name=provenance_finalize_graph_msg,json=provenanceFinalizeGraphMsg,proto3" json:"provenance_finalize_graph_msg,omitempty"`
	SplitterCreateSplitterMsg       *splitter.CreateSplitterMsg       `protobuf:"bytes,80,opt,name=splitter_create_splitter_msg,json=splitterCreateSplitterMsg,proto3" json:"splitter_create_splitter_msg,omitempty"`
	SplitterDistributeMsg           *splitter.DistributeMsg           `protobuf:"bytes,81,opt,name=splitter_distribute_msg,json=splitterDistributeMsg,proto3" json:"splitter_distribute_msg,omitempty"`
	ReceiptVerifyAndPayMsg          *receipt.VerifyAndPayMsg          `protobuf:"bytes,90,opt,name=receipt_verify_and_pay_msg,json=receiptVerifyAndPayMsg,proto3" json:"receipt_verify_and_pay_msg,omitempty"`
	ReceiptPauseMsg                 *receipt.PauseMsg                 `protobuf:"bytes,91,opt,name=receipt_pause_msg,json=receiptPauseMsg,proto3" json:"receipt_pause_msg,omitempty"`
	ReceiptUnpauseMsg               *receipt.UnpauseMsg               `protobuf:"bytes,92,opt,name=receipt_unpause_msg,json=receiptUnpauseMsg,proto3" json:"receipt_unpause_msg,omitempty"`
	ReceiptUpdateConfigurationMsg   *receipt.UpdateConfigurationMsg   `protobuf:"bytes,93,opt,name=receipt_update_configuration_msg,json=receiptUpdateConfigurationMsg,proto3" json:"receipt_update_configuration_msg,omitempty"`
	EscrowOpenDisputeMsg            *escrow.OpenDisputeMsg            `protobuf:"bytes,100,opt,name=escrow_open_dispute_msg,json=escrowOpenDisputeMsg,proto3" json:"escrow_open_dispute_msg,omitempty"`
	EscrowReleaseMsg                *escrow.ReleaseMsg                `protobuf:"bytes,101,opt,name=escrow_release_msg,json=escrowReleaseMsg,proto3" json:"escrow_release_msg,omitempty"`
	EscrowResolveDisputeMsg         *escrow.ResolveDisputeMsg         `protobuf:"bytes,102,opt,name=escrow_resolve_dispute_msg,json=escrowResolveDisputeMsg,proto3" json:"escrow_resolve_dispute_msg,omitempty"`
	EscrowUpdateConfigurationMsg    *escrow.UpdateConfigurationMsg    `protobuf:"bytes,103,opt,name=escrow_update_configuration_msg,json=escrowUpdateConfigurationMsg,proto3" json:"escrow_update_configuration_msg,omitempty"`
	FeepolicyUpdateConfigurationMsg *feepolicy.UpdateConfigurationMsg `protobuf:"bytes,110,opt,name=feepolicy_update_configuration_msg,json=feepolicyUpdateConfigurationMsg,proto3" json:"feepolicy_update_configuration_msg,omitempty"`
}

type (
	txWire Tx
)

func (m *txWire) Reset()         { *m = txWire{} }
func (m *txWire) String() string { return codec.String(m) }
func (*txWire) ProtoMessage()    {}

func (m *Tx) Marshal() ([]byte, error) {
	return codec.Marshal((*txWire)(m))
}

func (m *Tx) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*txWire)(m))
}
