/*
Package attribd links together all the various components
to construct the attribution chain application.
*/
package attribd

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/attribchain/attrib/x/directory"
	"github.com/attribchain/attrib/x/escrow"
	"github.com/attribchain/attrib/x/feepolicy"
	"github.com/attribchain/attrib/x/provenance"
	"github.com/attribchain/attrib/x/receipt"
	"github.com/attribchain/attrib/x/splitter"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/store/iavl"
	"github.com/iov-one/weave/x"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"
	"github.com/iov-one/weave/x/utils"
)

// Authenticator returns the typical authentication,
// just using public key signatures
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{})
}

// Chain returns a chain of decorators, to handle authentication,
// fees, logging, and recovery
func Chain(authFn x.Authenticator, ctrl cash.Controller) app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewKeyTagger(),
		utils.NewActionTagger(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		cash.NewFeeDecorator(authFn, ctrl),
		// on DeliverTx, bad tx will increment nonce and take fee
		// even if the message fails
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns a router dispatching to all extensions of the application.
// Extensions depend on each other only through their controllers.
func Router(authFn x.Authenticator, ctrl cash.Controller) *app.Router {
	r := app.NewRouter()

	dir := directory.NewController()
	graphs := provenance.NewController()
	dists := splitter.NewController()
	esc := escrow.NewController(ctrl, feepolicy.NewController())

	cash.RegisterRoutes(r, authFn, ctrl)
	migration.RegisterRoutes(r, authFn)
	directory.RegisterRoutes(r, authFn)
	provenance.RegisterRoutes(r, authFn, dir)
	splitter.RegisterRoutes(r, authFn, graphs, ctrl)
	receipt.RegisterRoutes(r, authFn, dists, esc)
	escrow.RegisterRoutes(r, authFn, esc)
	feepolicy.RegisterRoutes(r, authFn)
	return r
}

// QueryRouter returns a default query router, allowing access to "/wallets",
// "/auth", "/assets", "/graphs", "/distributions", "/nonces",
// "/escrowitems" and "/".
func QueryRouter() weave.QueryRouter {
	r := weave.NewQueryRouter()
	r.RegisterAll(
		cash.RegisterQuery,
		sigs.RegisterQuery,
		migration.RegisterQuery,
		directory.RegisterQuery,
		provenance.RegisterQuery,
		splitter.RegisterQuery,
		receipt.RegisterQuery,
		escrow.RegisterQuery,
		orm.RegisterQuery,
	)
	return r
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack() weave.Handler {
	authFn := Authenticator()
	ctrl := cash.NewController(cash.NewBucket())
	return Chain(authFn, ctrl).
		WithHandler(Router(authFn, ctrl))
}

// Application constructs a basic ABCI application with
// the given arguments. If you are not sure what to use
// for the Handler, just use Stack().
func Application(name string, h weave.Handler,
	tx weave.TxDecoder, dbPath string, debug bool) (app.BaseApp, error) {

	ctx := context.Background()
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, errors.Wrap(err, "cannot create database instance")
	}
	store := app.NewStoreApp(name, kv, QueryRouter(), ctx)
	base := app.NewBaseApp(store, tx, h, nil, debug)
	return base, nil
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (weave.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.MockCommitStore(), nil
	}

	// Expand the path fully
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database name: %s", path)
	}

	// Some external calls accidently add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	// Split the database name into it's components (dir, name)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name), nil
}
