package main

import (
	"flag"
	"fmt"
	"io"

	attribd "github.com/attribchain/attrib/cmd/attribd/app"
	"github.com/attribchain/attrib/x/escrow"
	"github.com/iov-one/weave"
)

func cmdReleaseEscrow(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Create a transaction for releasing a payment held in escrow. Release is
possible once the hold window is over.
		`)
		fl.PrintDefaults()
	}
	var (
		escrowFl = flSeq(fl, "escrow", "", "An ID of an escrow item that is to be released.")
	)
	fl.Parse(args)

	if len(*escrowFl) == 0 {
		flagDie("escrow is required")
	}
	tx := &attribd.Tx{
		EscrowReleaseMsg: &escrow.ReleaseMsg{
			Metadata: &weave.Metadata{Schema: 1},
			EscrowID: *escrowFl,
		},
	}
	_, err := writeTx(output, tx)
	return err
}

func cmdOpenDispute(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Create a transaction for disputing a payment held in escrow. Only the payer can
dispute, before the end of the hold window.
		`)
		fl.PrintDefaults()
	}
	var (
		escrowFl = flSeq(fl, "escrow", "", "An ID of an escrow item that is disputed.")
	)
	fl.Parse(args)

	if len(*escrowFl) == 0 {
		flagDie("escrow is required")
	}
	tx := &attribd.Tx{
		EscrowOpenDisputeMsg: &escrow.OpenDisputeMsg{
			Metadata: &weave.Metadata{Schema: 1},
			EscrowID: *escrowFl,
		},
	}
	_, err := writeTx(output, tx)
	return err
}

func cmdResolveDispute(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Create a transaction with an arbiter decision about a disputed payment.
		`)
		fl.PrintDefaults()
	}
	var (
		escrowFl = flSeq(fl, "escrow", "", "An ID of a disputed escrow item.")
		refundFl = fl.Bool("refund", false, "Return the payment to the payer instead of releasing it.")
	)
	fl.Parse(args)

	if len(*escrowFl) == 0 {
		flagDie("escrow is required")
	}
	tx := &attribd.Tx{
		EscrowResolveDisputeMsg: &escrow.ResolveDisputeMsg{
			Metadata: &weave.Metadata{Schema: 1},
			EscrowID: *escrowFl,
			Refund:   *refundFl,
		},
	}
	_, err := writeTx(output, tx)
	return err
}
