package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	attribd "github.com/attribchain/attrib/cmd/attribd/app"
	"github.com/attribchain/attrib/x/receipt"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
)

func cmdSignReceipt(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Sign a usage receipt with the payer key and create a transaction that a
verifier can submit. The payer address is derived from the key.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = fl.String("key", env("ATTRIBCLI_PRIV_KEY", os.Getenv("HOME")+"/.attrib.priv.key"),
			"Path to the private key file that the receipt is signed with. You can use ATTRIBCLI_PRIV_KEY environment variable to set it.")
		assetFl   = flSeq(fl, "asset", "", "ID of the used asset.")
		amountFl  = flCoin(fl, "amount", "", "Amount paid for the usage, for example \"10 IOV\".")
		nonceFl   = fl.Uint64("nonce", 0, "Nonce expected from the payer.")
		validFl   = fl.Duration("valid", time.Hour, "How long from now the receipt can be accepted.")
		chainFl   = fl.String("chain", env("ATTRIBCLI_CHAIN_ID", "attrib-dev"), "Chain ID the receipt is valid for.")
		domainFl  = fl.String("domain", "attrib", "Signing domain name, as configured on chain.")
		versionFl = fl.String("domain-version", "1", "Signing domain version, as configured on chain.")
	)
	fl.Parse(args)

	if len(*assetFl) == 0 {
		flagDie("asset is required")
	}
	if coin.IsEmpty(amountFl) {
		flagDie("amount is required")
	}

	key, err := loadKey(*keyPathFl)
	if err != nil {
		return err
	}
	r := &receipt.UsageReceipt{
		AssetID:  *assetFl,
		Amount:   amountFl,
		Payer:    receipt.PayerAddress(key.PubKey()),
		Nonce:    *nonceFl,
		Deadline: weave.AsUnixTime(time.Now().Add(*validFl)),
	}
	if err := r.Validate(); err != nil {
		return fmt.Errorf("invalid receipt: %s", err)
	}

	domain := receipt.Domain{Name: *domainFl, Version: *versionFl, ChainID: *chainFl}
	sig, err := receipt.Sign(key, receipt.Digest(domain, r))
	if err != nil {
		return fmt.Errorf("cannot sign receipt: %s", err)
	}

	tx := &attribd.Tx{
		ReceiptVerifyAndPayMsg: &receipt.VerifyAndPayMsg{
			Metadata:  &weave.Metadata{Schema: 1},
			Receipt:   r,
			Signature: sig,
		},
	}
	_, err = writeTx(output, tx)
	return err
}

// flagDie terminates the process with an invalid argument message.
func flagDie(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(2)
}
