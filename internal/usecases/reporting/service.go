package reporting

import (
	"context"
	"time"

	"github.com/sourcegraph/conc/pool"
	"github.com/vfg2006/campaign-budget-bot/internal/config"
	"github.com/vfg2006/campaign-budget-bot/internal/domain"
	"github.com/vfg2006/campaign-budget-bot/pkg/log"
	"github.com/vfg2006/campaign-budget-bot/pkg/utils"
)

type Service struct {
	cfg      *config.Config
	platform AdPlatform
	now      func() time.Time
}

func NewService(cfg *config.Config, platform AdPlatform) *Service {
	return &Service{
		cfg:      cfg,
		platform: platform,
		now:      time.Now,
	}
}

// FetchToday busca snapshot e orçamento em paralelo e só retorna quando os dois terminam.
// Falha se qualquer uma das leituras falhar.
func (s *Service) FetchToday(ctx context.Context) (*domain.DailyReport, error) {
	today := utils.StartOfDay(s.now(), s.cfg.TikTok.Location)

	var (
		snapshot *domain.Snapshot
		budget   *domain.BudgetState
	)

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		var err error
		snapshot, err = s.platform.GetSnapshot(ctx, today)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		budget, err = s.platform.GetDailyBudget(ctx)
		return err
	})

	if err := p.Wait(); err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"date":  today.Format(time.DateOnly),
			"error": err.Error(),
		}).Error("reporting: falha ao buscar relatório do dia")
		return nil, err
	}

	return &domain.DailyReport{
		Snapshot: *snapshot,
		Budget:   *budget,
	}, nil
}
