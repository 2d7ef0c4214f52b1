package gateway

import "fmt"

// AuthError reports a rejected unlock or account creation.
type AuthError struct {
	Op  string // "unlock" or "register"
	Err error
}

func (e *AuthError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *AuthError) Unwrap() error { return e.Err }

// SubmitError reports a state-changing call the node refused to accept:
// insufficient funds, locked sender, contract-level revert.
type SubmitError struct {
	Method string
	Err    error
}

func (e *SubmitError) Error() string { return fmt.Sprintf("submit %s: %v", e.Method, e.Err) }

func (e *SubmitError) Unwrap() error { return e.Err }

// QueryError reports a failed read-only call, typically an unreachable
// node or an undecodable reply.
type QueryError struct {
	Method string
	Err    error
}

func (e *QueryError) Error() string { return fmt.Sprintf("query %s: %v", e.Method, e.Err) }

func (e *QueryError) Unwrap() error { return e.Err }
