package main

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/attribchain/attrib/x/receipt"
	"github.com/btcsuite/btcd/btcec"
	"github.com/btcsuite/btcutil/bech32"
	"github.com/iov-one/weave"
)

// bech32Prefix is the human readable part of the displayed addresses.
const bech32Prefix = "attrib"

func cmdKeygen(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Generate a new secp256k1 payer key.

When successful a new file with binary content containing private key is
created. This command fails if the private key file already exists.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = fl.String("key", env("ATTRIBCLI_PRIV_KEY", os.Getenv("HOME")+"/.attrib.priv.key"),
			"Path to the private key file that receipts are signed with. You can use ATTRIBCLI_PRIV_KEY environment variable to set it.")
	)
	fl.Parse(args)

	if _, err := os.Stat(*keyPathFl); !os.IsNotExist(err) {
		// Never overwrite a key, the user must delete it manually.
		return fmt.Errorf("private key file %q already exists, delete this file and try again", *keyPathFl)
	}

	key, err := btcec.NewPrivateKey(btcec.S256())
	if err != nil {
		return fmt.Errorf("cannot generate secp256k1 key: %s", err)
	}

	fd, err := os.OpenFile(*keyPathFl, os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("cannot create private key file: %s", err)
	}
	defer fd.Close()

	if _, err := fd.Write(key.Serialize()); err != nil {
		return fmt.Errorf("cannot write private key: %s", err)
	}
	if err := fd.Close(); err != nil {
		return fmt.Errorf("cannot close private key file: %s", err)
	}
	return nil
}

func cmdKeyaddr(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print out the payer address associated with your private key, in hex and
bech32 format.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = fl.String("key", env("ATTRIBCLI_PRIV_KEY", os.Getenv("HOME")+"/.attrib.priv.key"),
			"Path to the private key file. You can use ATTRIBCLI_PRIV_KEY environment variable to set it.")
	)
	fl.Parse(args)

	key, err := loadKey(*keyPathFl)
	if err != nil {
		return err
	}
	addr := receipt.PayerAddress(key.PubKey())
	bech, err := toBech32(bech32Prefix, addr)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(output, "%s\n%s\n", addr, bech)
	return err
}

func loadKey(path string) (*btcec.PrivateKey, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read private key file: %s", err)
	}
	if len(raw) != btcec.PrivKeyBytesLen {
		return nil, fmt.Errorf("invalid private key length: %d", len(raw))
	}
	key, _ := btcec.PrivKeyFromBytes(btcec.S256(), raw)
	return key, nil
}

// toBech32 returns the bech32 representation of given address.
func toBech32(prefix string, addr weave.Address) ([]byte, error) {
	data, err := bech32.ConvertBits(addr, 8, 5, true)
	if err != nil {
		return nil, fmt.Errorf("cannot convert bits: %s", err)
	}
	enc, err := bech32.Encode(prefix, data)
	if err != nil {
		return nil, fmt.Errorf("cannot compute bech32: %s", err)
	}
	return []byte(enc), nil
}
