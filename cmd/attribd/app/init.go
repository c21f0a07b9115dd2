package attribd

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/attribchain/attrib/x/directory"
	"github.com/attribchain/attrib/x/escrow"
	"github.com/attribchain/attrib/x/feepolicy"
	"github.com/attribchain/attrib/x/receipt"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/commands/server"
	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x/cash"
	abci "github.com/tendermint/tendermint/abci/types"
)

// GenInitOptions will produce some basic options for one rich
// account, to use for dev mode. The same account administers all
// extensions, verifies receipts and arbitrates disputes.
//
// You can set the ticker and the address as the first and second argument.
func GenInitOptions(args []string) (json.RawMessage, error) {
	ticker := "ATR"
	if len(args) > 0 {
		ticker = args[0]
		if !coin.IsCC(ticker) {
			return nil, errors.Wrapf(errors.ErrInput, "invalid ticker %s", ticker)
		}
	}

	var addr string
	if len(args) > 1 {
		addr = args[1]
	} else {
		// if no address provided, auto-generate one
		// and print out the keys
		bz, keys, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		addr = bz.String()
		fmt.Println(keys)
	}

	opts := fmt.Sprintf(`
          {
            "cash": [
              {
                "address": "%[1]s",
                "coins": ["123456789 %[2]s"]
              }
            ],
            "conf": {
              "cash": {
                "metadata": {"schema": 1},
                "collector_address": "%[1]s",
                "minimal_fee": "0 %[2]s"
              },
              "migration": {
                "metadata": {"schema": 1},
                "admin": "%[1]s"
              },
              "directory": {
                "metadata": {"schema": 1},
                "owner": "%[1]s",
                "admin": "%[1]s"
              },
              "feepolicy": {
                "metadata": {"schema": 1},
                "owner": "%[1]s",
                "fee_bps": 250,
                "treasury": "%[1]s"
              },
              "receipt": {
                "metadata": {"schema": 1},
                "owner": "%[1]s",
                "verifiers": ["%[1]s"],
                "pauser": "%[1]s",
                "domain_name": "attrib",
                "domain_version": "1"
              },
              "escrow": {
                "metadata": {"schema": 1},
                "owner": "%[1]s",
                "arbiters": ["%[1]s"]
              }
            },
            "initialize_schema": [
              {"pkg": "cash", "ver": 1},
              {"pkg": "sigs", "ver": 1},
              {"pkg": "migration", "ver": 1},
              {"pkg": "directory", "ver": 1},
              {"pkg": "provenance", "ver": 1},
              {"pkg": "splitter", "ver": 1},
              {"pkg": "receipt", "ver": 1},
              {"pkg": "escrow", "ver": 1},
              {"pkg": "feepolicy", "ver": 1}
            ],
            "directory": {
              "assets": [],
              "contributors": []
            }
          }
	`, addr, ticker)
	return []byte(opts), nil
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(options *server.Options) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if options.Home != "" {
		dbPath = filepath.Join(options.Home, "attrib.db")
	}

	application, err := Application("attrib", Stack(), TxDecoder, dbPath, options.Debug)
	if err != nil {
		return nil, err
	}
	application.WithInit(app.ChainInitializers(
		&migration.Initializer{},
		&cash.Initializer{},
		&directory.Initializer{},
		&feepolicy.Initializer{},
		&receipt.Initializer{},
		&escrow.Initializer{},
	))

	// set the logger and return
	application.WithLogger(options.Logger)
	return application, nil
}

type output struct {
	Pubkey *crypto.PublicKey  `json:"pub_key"`
	Secret *crypto.PrivateKey `json:"secret"`
}

// GenerateCoinKey returns the address of a public key,
// along with a json representation of the keys.
// You can give coins to this address and
// import the keys in the js client to use them
func GenerateCoinKey() (weave.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	pubKey := privKey.PublicKey()
	addr := pubKey.Address()

	out := output{Pubkey: pubKey, Secret: privKey}
	keys, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, "", err
	}

	return addr, string(keys), nil
}
