package budgeting

import "errors"

var (
	ErrInvalidAmount     = errors.New("valor inválido")
	ErrNonPositiveAmount = errors.New("o valor precisa ser maior que zero")
	ErrBudgetDecrease    = errors.New("o orçamento não pode ser reduzido no mesmo dia")
)
