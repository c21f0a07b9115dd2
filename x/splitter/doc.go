/*
Package splitter materializes the payout distribution of an asset from its
finalized provenance graph.

A distribution is created at most once per asset. Every graph edge becomes a
payee, in the order the edges were added, with the edge weight as its share.
A contributor edge pays the contributor. A parent edge pays the splitter
account of the parent asset, so that revenue flows upstream.

Each distribution owns a splitter account. Escrow sends the released revenue
there and anyone can trigger the payout of its balance to the payees.
*/
package splitter
