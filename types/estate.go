package types

import (
	"fmt"
	"math/big"
)

// EstateType mirrors the contract-side estate type enum. The integer
// encoding is part of the wire contract and must never be renumbered.
type EstateType uint8

const (
	House EstateType = iota
	Flat
	Loft
	Dacha
)

// EstateTypeNames lists the type names in wire-encoding order. Menus
// present them as 1-based ordinals.
var EstateTypeNames = []string{"House", "Flat", "Loft", "Dacha"}

func (t EstateType) String() string {
	if int(t) < len(EstateTypeNames) {
		return EstateTypeNames[t]
	}
	return fmt.Sprintf("EstateType(%d)", uint8(t))
}

// AdStatus mirrors the contract-side advertisement status enum.
type AdStatus uint8

const (
	Opened AdStatus = iota
	Closed
)

var AdStatusNames = []string{"Opened", "Closed"}

func (s AdStatus) String() string {
	if int(s) < len(AdStatusNames) {
		return AdStatusNames[s]
	}
	return fmt.Sprintf("AdStatus(%d)", uint8(s))
}

// Estate is the client-side view of an estate record stored by the
// contract. The client never constructs one; it only decodes and
// displays what getEstates returns.
type Estate struct {
	ID     *big.Int
	Addr   string     // street address of the estate
	Square *big.Int   // area in square meters
	Type   EstateType
	Owner  string     // hex address of the owning account
	Active bool
}

// Advertisement is the client-side view of a sale listing.
type Advertisement struct {
	Price    *big.Int // price in wei
	EstateID *big.Int
	Owner    string // seller account
	Buyer    string // zero address until bought
	Date     *big.Int
	Status   AdStatus
}
