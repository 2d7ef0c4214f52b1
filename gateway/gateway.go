// Package gateway defines the boundary to the remote ledger node. The
// rest of the client depends on the Gateway interface only; the
// JSON-RPC implementation lives in gateway/geth.
package gateway

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Gateway is the capability surface of the remote node: account
// management through the personal API, contract calls and native
// balance queries. Every method takes a context so a caller can bound
// a hung node; the interactive client passes context.Background().
type Gateway interface {
	// UnlockAccount authorizes the account for subsequent transacting
	// calls. Fails with *AuthError when the node rejects the password
	// or does not know the account.
	UnlockAccount(ctx context.Context, account, password string) error

	// NewAccount creates a node-managed account protected by password
	// and returns its hex address. Fails with *AuthError.
	NewAccount(ctx context.Context, password string) (string, error)

	// Transact ABI-encodes a state-changing contract call and submits
	// it from the given account, attaching value when non-nil. It
	// returns the transaction hash as soon as the node accepts the
	// submission; it never waits for the transaction to be mined.
	// Fails with *SubmitError.
	Transact(ctx context.Context, from, method string, value *big.Int, args ...interface{}) (string, error)

	// Call performs a read-only contract call and decodes the reply
	// into out. Fails with *QueryError.
	Call(ctx context.Context, method string, out interface{}, args ...interface{}) error

	// CallFrom is Call with an explicit caller address, for view
	// methods whose result depends on msg.sender.
	CallFrom(ctx context.Context, from, method string, out interface{}, args ...interface{}) error

	// NativeBalance returns the account's balance in wei.
	NativeBalance(ctx context.Context, account string) (*big.Int, error)
}

// EstateRecord is the wire shape of one getEstates tuple. Field order
// and names follow the contract ABI components; do not reorder.
type EstateRecord struct {
	Addr     string
	Square   *big.Int
	EsType   uint8
	Owner    common.Address
	IsActive bool
	IdEstate *big.Int
}

// AdRecord is the wire shape of one advertisement, as returned both by
// the getAd listing and the ads(id) lookup.
type AdRecord struct {
	Price    *big.Int
	IdEstate *big.Int
	Owner    common.Address
	Buyer    common.Address
	Date     *big.Int
	AdType   uint8
}
