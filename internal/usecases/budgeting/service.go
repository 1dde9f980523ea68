package budgeting

import (
	"github.com/vfg2006/campaign-budget-bot/internal/domain"
)

// BudgetPlan é o resultado da validação de um pedido de novo orçamento
type BudgetPlan struct {
	Desired    int64
	Effective  int64
	Current    float64
	SpendToday float64
	// Raised indica que a regra dos 105% elevou o valor pedido
	Raised bool
}

type Planner interface {
	Plan(desired int64, report *domain.DailyReport) (*BudgetPlan, error)
}

type Service struct{}

func NewService() Planner {
	return &Service{}
}

// Plan aplica, nesta ordem: valor positivo, orçamento não decrescente no mesmo dia e a regra
// dos 105%. Nenhuma chamada à plataforma acontece aqui.
func (s *Service) Plan(desired int64, report *domain.DailyReport) (*BudgetPlan, error) {
	if desired <= 0 {
		return nil, ErrNonPositiveAmount
	}

	current := report.Budget.CurrentBudget
	if float64(desired) < current {
		return nil, ErrBudgetDecrease
	}

	spend := report.Snapshot.Cost
	effective := EnforceMinimumRaise(desired, spend)

	return &BudgetPlan{
		Desired:    desired,
		Effective:  effective,
		Current:    current,
		SpendToday: spend,
		Raised:     effective > desired,
	}, nil
}
