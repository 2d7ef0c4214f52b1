// Package gatewaytest provides a recording in-memory gateway for tests.
// Every invocation is appended to Calls so tests can assert ordering,
// argument shapes and that validation failures never reach the node.
package gatewaytest

import (
	"context"
	"math/big"

	"estatecli/gateway"
)

// Call is one recorded gateway invocation.
type Call struct {
	Op     string // unlock, new, transact, call, callfrom, balance
	Method string
	From   string
	Value  *big.Int
	Args   []interface{}
}

type Fake struct {
	Calls []Call

	UnlockErr      error
	NewAccountAddr string
	NewAccountErr  error
	TxHash         string
	TransactErr    error
	// OnCall fills out for read-only calls; nil leaves out untouched.
	OnCall     func(method string, out interface{}, args []interface{}) error
	Balance    *big.Int
	BalanceErr error
}

var _ gateway.Gateway = (*Fake)(nil)

func (f *Fake) UnlockAccount(_ context.Context, account, _ string) error {
	f.Calls = append(f.Calls, Call{Op: "unlock", From: account})
	return f.UnlockErr
}

func (f *Fake) NewAccount(_ context.Context, _ string) (string, error) {
	f.Calls = append(f.Calls, Call{Op: "new"})
	if f.NewAccountErr != nil {
		return "", f.NewAccountErr
	}
	return f.NewAccountAddr, nil
}

func (f *Fake) Transact(_ context.Context, from, method string, value *big.Int, args ...interface{}) (string, error) {
	f.Calls = append(f.Calls, Call{Op: "transact", Method: method, From: from, Value: value, Args: args})
	if f.TransactErr != nil {
		return "", f.TransactErr
	}
	return f.TxHash, nil
}

func (f *Fake) Call(_ context.Context, method string, out interface{}, args ...interface{}) error {
	f.Calls = append(f.Calls, Call{Op: "call", Method: method, Args: args})
	if f.OnCall != nil {
		return f.OnCall(method, out, args)
	}
	return nil
}

func (f *Fake) CallFrom(_ context.Context, from, method string, out interface{}, args ...interface{}) error {
	f.Calls = append(f.Calls, Call{Op: "callfrom", Method: method, From: from, Args: args})
	if f.OnCall != nil {
		return f.OnCall(method, out, args)
	}
	return nil
}

func (f *Fake) NativeBalance(_ context.Context, account string) (*big.Int, error) {
	f.Calls = append(f.Calls, Call{Op: "balance", From: account})
	if f.BalanceErr != nil {
		return nil, f.BalanceErr
	}
	return f.Balance, nil
}
