package reporting

import (
	"context"
	"time"

	"github.com/vfg2006/campaign-budget-bot/internal/domain"
)

// AdPlatform define o que o bot precisa da plataforma de anúncios para a campanha configurada
type AdPlatform interface {
	// GetSnapshot obtém custo, pedidos e receita da campanha na data (no fuso da plataforma)
	GetSnapshot(ctx context.Context, date time.Time) (*domain.Snapshot, error)

	// GetDailyBudget obtém o orçamento diário atual
	GetDailyBudget(ctx context.Context) (*domain.BudgetState, error)

	// UpdateDailyBudget grava um novo orçamento diário
	UpdateDailyBudget(ctx context.Context, amount int64) error
}

// Reporter busca o relatório do dia
type Reporter interface {
	FetchToday(ctx context.Context) (*domain.DailyReport, error)
}
