/*
Package receipt verifies signed usage receipts and moves the paid amount into
escrow.

A receipt is signed off chain by the payer with a secp256k1 key. The signed
digest follows the typed structured data scheme: a keccak hash of the
receipt fields combined with a domain separator built from the protocol
name, version, chain id and the verifier identity.

Only a verifier may submit a receipt, and only while verification is not
paused. Each payer has a nonce, starting at 0, that must match the receipt
nonce exactly. An accepted receipt advances it by one.
*/
package receipt
