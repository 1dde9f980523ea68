package budgeting

import (
	"github.com/shopspring/decimal"
)

// minimumRaiseFactor é a regra da plataforma: o orçamento diário não pode ficar abaixo
// de 105% do que já foi gasto no dia
var minimumRaiseFactor = decimal.RequireFromString("1.05")

// EnforceMinimumRaise devolve max(desired, ceil(spendToday * 1.05)).
// A conta é feita em decimal para que 100000 * 1.05 dê exatamente 105000.
func EnforceMinimumRaise(desired int64, spendToday float64) int64 {
	if spendToday <= 0 {
		return desired
	}

	minimum := decimal.NewFromFloat(spendToday).Mul(minimumRaiseFactor).Ceil().IntPart()
	if minimum > desired {
		return minimum
	}

	return desired
}
