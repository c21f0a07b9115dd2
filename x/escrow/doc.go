/*

Package escrow holds usage payments before they reach the asset splitter.

> An escrow is a financial arrangement where a third party holds and regulates
> payment of the funds required for two parties involved in a given transaction.

Every accepted receipt creates an escrow item holding the paid amount on its
own custody account. The item is released at or after the end of the hold
window: a fee goes to the treasury and the rest to the asset splitter
account. Until the end of the window the payer can dispute the payment,
which leaves the decision to an arbiter: release as usual or refund the
payer.

Item states and the allowed transitions:

	HELD     -> DISPUTED  open dispute, payer only, before the deadline
	HELD     -> RELEASED  release, anyone, at or after the deadline
	DISPUTED -> RELEASED  resolve dispute, arbiter only
	DISPUTED -> REFUNDED  resolve dispute with refund, arbiter only

RELEASED and REFUNDED are final.

*/
package escrow
