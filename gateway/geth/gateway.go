// Package geth implements the ledger gateway over a geth node's
// JSON-RPC endpoint. Accounts are node-managed through the personal
// API, so the client never touches key material itself.
package geth

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/rs/zerolog"
	"golang.org/x/xerrors"

	"estatecli/gateway"
	"estatecli/logging"
)

// Gateway talks to a single node and a single deployed contract.
type Gateway struct {
	rpc            *rpc.Client
	contract       common.Address
	unlockDuration uint64 // seconds the personal API keeps an account unlocked
	logger         zerolog.Logger
}

var _ gateway.Gateway = (*Gateway)(nil)

// Dial connects to the node at nodeURL and binds the gateway to the
// contract deployed at contractAddr.
func Dial(ctx context.Context, nodeURL, contractAddr string, unlockDuration uint64) (*Gateway, error) {
	if !common.IsHexAddress(contractAddr) {
		return nil, xerrors.Errorf("invalid contract address %q", contractAddr)
	}
	client, err := rpc.DialContext(ctx, nodeURL)
	if err != nil {
		return nil, xerrors.Errorf("dial node %s: %w", nodeURL, err)
	}
	g := &Gateway{
		rpc:            client,
		contract:       common.HexToAddress(contractAddr),
		unlockDuration: unlockDuration,
		logger:         logging.RootLogger.With().Str("Gateway", nodeURL).Logger(),
	}
	g.logger.Info().Str("contract", g.contract.Hex()).Msg("gateway connected")
	return g, nil
}

func (g *Gateway) Close() {
	g.rpc.Close()
}

func (g *Gateway) UnlockAccount(ctx context.Context, account, password string) error {
	if !common.IsHexAddress(account) {
		return &gateway.AuthError{Op: "unlock", Err: xerrors.Errorf("invalid account address %q", account)}
	}
	var unlocked bool
	err := g.rpc.CallContext(ctx, &unlocked, "personal_unlockAccount",
		common.HexToAddress(account), password, g.unlockDuration)
	if err != nil {
		return &gateway.AuthError{Op: "unlock", Err: err}
	}
	if !unlocked {
		return &gateway.AuthError{Op: "unlock", Err: errors.New("node refused to unlock the account")}
	}
	g.logger.Debug().Str("account", account).Msg("account unlocked")
	return nil
}

func (g *Gateway) NewAccount(ctx context.Context, password string) (string, error) {
	var addr common.Address
	if err := g.rpc.CallContext(ctx, &addr, "personal_newAccount", password); err != nil {
		return "", &gateway.AuthError{Op: "register", Err: err}
	}
	g.logger.Debug().Str("account", addr.Hex()).Msg("account created")
	return addr.Hex(), nil
}

func (g *Gateway) Transact(ctx context.Context, from, method string, value *big.Int, args ...interface{}) (string, error) {
	input, err := estateABI.Pack(method, args...)
	if err != nil {
		return "", &gateway.SubmitError{Method: method, Err: err}
	}
	msg := map[string]interface{}{
		"from": common.HexToAddress(from),
		"to":   g.contract,
		"data": hexutil.Bytes(input),
	}
	if value != nil {
		msg["value"] = (*hexutil.Big)(value)
	}
	var txHash common.Hash
	if err := g.rpc.CallContext(ctx, &txHash, "eth_sendTransaction", msg); err != nil {
		return "", &gateway.SubmitError{Method: method, Err: err}
	}
	g.logger.Info().Str("method", method).Str("tx", txHash.Hex()).Msg("transaction submitted")
	return txHash.Hex(), nil
}

func (g *Gateway) Call(ctx context.Context, method string, out interface{}, args ...interface{}) error {
	return g.call(ctx, nil, method, out, args)
}

func (g *Gateway) CallFrom(ctx context.Context, from, method string, out interface{}, args ...interface{}) error {
	sender := common.HexToAddress(from)
	return g.call(ctx, &sender, method, out, args)
}

func (g *Gateway) call(ctx context.Context, from *common.Address, method string, out interface{}, args []interface{}) error {
	input, err := estateABI.Pack(method, args...)
	if err != nil {
		return &gateway.QueryError{Method: method, Err: err}
	}
	msg := map[string]interface{}{
		"to":   g.contract,
		"data": hexutil.Bytes(input),
	}
	if from != nil {
		msg["from"] = *from
	}
	var raw hexutil.Bytes
	if err := g.rpc.CallContext(ctx, &raw, "eth_call", msg, "latest"); err != nil {
		return &gateway.QueryError{Method: method, Err: err}
	}
	if err := estateABI.UnpackIntoInterface(out, method, raw); err != nil {
		return &gateway.QueryError{Method: method, Err: xerrors.Errorf("decode reply: %w", err)}
	}
	return nil
}

func (g *Gateway) NativeBalance(ctx context.Context, account string) (*big.Int, error) {
	var balance hexutil.Big
	err := g.rpc.CallContext(ctx, &balance, "eth_getBalance",
		common.HexToAddress(account), "latest")
	if err != nil {
		return nil, &gateway.QueryError{Method: "eth_getBalance", Err: err}
	}
	return (*big.Int)(&balance), nil
}
