// Package validate holds the client-side input checks that run before
// anything is sent to the node: password policy, integer fields and
// 1-based menu ordinals. All checks are pure and fail fast with the
// first violated rule.
package validate

import (
	"math/big"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// ValidationError reports a single rejected input. It never wraps a
// remote failure; by the time a gateway call is made, validation has
// already passed.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

var (
	ErrPasswordShort   = &ValidationError{"password must be at least 12 characters long"}
	ErrPasswordUpper   = &ValidationError{"password must contain at least one uppercase letter"}
	ErrPasswordLower   = &ValidationError{"password must contain at least one lowercase letter"}
	ErrPasswordDigit   = &ValidationError{"password must contain at least one digit"}
	ErrPasswordSpecial = &ValidationError{"password must contain at least one special character"}
)

// specialRunes is the fixed character set accepted as "special".
const specialRunes = "!@#$%^&*()-_=+{}[];:'\";<>?,./`~"

// Password checks the account password policy: length >= 12, at least
// one uppercase letter, one lowercase letter, one digit and one special
// character. The first failing rule is returned; later rules are not
// inspected.
func Password(password string) error {
	if utf8.RuneCountInString(password) < 12 {
		return ErrPasswordShort
	}
	if !containsFunc(password, unicode.IsUpper) {
		return ErrPasswordUpper
	}
	if !containsFunc(password, unicode.IsLower) {
		return ErrPasswordLower
	}
	if !containsFunc(password, unicode.IsDigit) {
		return ErrPasswordDigit
	}
	if !containsFunc(password, isSpecial) {
		return ErrPasswordSpecial
	}
	return nil
}

func isSpecial(r rune) bool {
	for _, s := range specialRunes {
		if r == s {
			return true
		}
	}
	return false
}

func containsFunc(s string, fn func(rune) bool) bool {
	for _, r := range s {
		if fn(r) {
			return true
		}
	}
	return false
}

// BigInt parses a base-10 integer field (square, price, id, amount).
func BigInt(raw string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, &ValidationError{"expected an integer, got " + strconv.Quote(raw)}
	}
	return n, nil
}

// Choice converts a 1-based menu ordinal into the contract's 0-based
// enum encoding. count is the number of entries presented.
func Choice(raw string, count int) (uint8, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ValidationError{"expected a number, got " + strconv.Quote(raw)}
	}
	if n < 1 || n > count {
		return 0, &ValidationError{"choice out of range, expected 1-" + strconv.Itoa(count)}
	}
	return uint8(n - 1), nil
}

// BoolLiteral resolves the estate active flag from raw text. Only the
// exact literal "true" activates; every other input, including "TRUE",
// means false. The comparison is deliberately case-sensitive to keep
// the behavior of the original client.
func BoolLiteral(raw string) bool {
	return raw == "true"
}
