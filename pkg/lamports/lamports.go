package lamports

import (
	"github.com/shopspring/decimal"
)

// PerSOL is the number of lamports in one SOL.
const PerSOL = 1_000_000_000

const solExp = -9

// ToSOL converts a lamport amount to SOL without rounding.
func ToSOL(l int64) decimal.Decimal {
	return decimal.New(l, solExp)
}

// FromSOL converts SOL to lamports, rounding half away from zero to a whole lamport.
func FromSOL(sol decimal.Decimal) int64 {
	return sol.Mul(decimal.NewFromInt(PerSOL)).Round(0).IntPart()
}

// Format renders a lamport amount as SOL: 116 -> "0.000000116 SOL".
func Format(l int64) string {
	return ToSOL(l).String() + " SOL"
}
