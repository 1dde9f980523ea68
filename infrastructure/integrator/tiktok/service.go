package tiktok

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	tiktokdomain "github.com/vfg2006/campaign-budget-bot/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/campaign-budget-bot/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/vfg2006/campaign-budget-bot/internal/config"
	"github.com/vfg2006/campaign-budget-bot/internal/domain"
)

// TikTokIntegrator expõe a campanha configurada como a plataforma de anúncios do bot
type TikTokIntegrator struct {
	cfg    *config.Config
	Client tiktokclient.Client
}

func New(cfg *config.Config, client tiktokclient.Client) *TikTokIntegrator {
	return &TikTokIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// GetSnapshot soma custo, pedidos e receita bruta da campanha na data informada
func (s *TikTokIntegrator) GetSnapshot(ctx context.Context, date time.Time) (*domain.Snapshot, error) {
	day := date.Format(time.DateOnly)

	params := tiktokclient.ReportParams{
		AdvertiserID: s.cfg.TikTok.AdvertiserID,
		StoreIDs:     []string{s.cfg.TikTok.StoreID},
		StartDate:    day,
		EndDate:      day,
		Dimensions:   []string{tiktokdomain.DimensionCampaignID, tiktokdomain.DimensionDay},
		Metrics:      []string{tiktokdomain.MetricCost, tiktokdomain.MetricOrders, tiktokdomain.MetricGrossRevenue},
		Filtering:    &tiktokdomain.ReportFiltering{CampaignIDs: []string{s.cfg.TikTok.CampaignID}},
		Page:         1,
		PageSize:     100,
	}

	report, err := s.Client.GetGMVMaxReport(ctx, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": s.cfg.TikTok.CampaignID,
			"date":        day,
			"error":       err.Error(),
		}).Error("tiktok: falha ao obter relatório da campanha")
		return nil, err
	}

	cost, orders, gross := decimal.Zero, decimal.Zero, decimal.Zero
	for _, row := range report.List {
		if id, ok := row.Dimensions[tiktokdomain.DimensionCampaignID]; ok && id != s.cfg.TikTok.CampaignID {
			continue
		}

		cost = cost.Add(row.Metric(tiktokdomain.MetricCost).Decimal)
		orders = orders.Add(row.Metric(tiktokdomain.MetricOrders).Decimal)
		gross = gross.Add(row.Metric(tiktokdomain.MetricGrossRevenue).Decimal)
	}

	return &domain.Snapshot{
		Date:   date,
		Cost:   cost.InexactFloat64(),
		Orders: orders.IntPart(),
		Gross:  gross.InexactFloat64(),
	}, nil
}

// GetDailyBudget lê o orçamento diário atualmente configurado na campanha
func (s *TikTokIntegrator) GetDailyBudget(ctx context.Context) (*domain.BudgetState, error) {
	campaign, err := s.Client.GetCampaign(ctx, s.cfg.TikTok.AdvertiserID, s.cfg.TikTok.CampaignID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": s.cfg.TikTok.CampaignID,
			"error":       err.Error(),
		}).Error("tiktok: falha ao obter orçamento da campanha")
		return nil, err
	}

	return &domain.BudgetState{CurrentBudget: campaign.Budget.InexactFloat64()}, nil
}

// UpdateDailyBudget grava o novo orçamento diário
func (s *TikTokIntegrator) UpdateDailyBudget(ctx context.Context, amount int64) error {
	logrus.WithFields(logrus.Fields{
		"campaign_id": s.cfg.TikTok.CampaignID,
		"budget":      amount,
	}).Info("tiktok: atualizando orçamento diário")

	err := s.Client.UpdateCampaignBudget(ctx, tiktokdomain.UpdateBudgetRequest{
		AdvertiserID: s.cfg.TikTok.AdvertiserID,
		CampaignID:   s.cfg.TikTok.CampaignID,
		Budget:       amount,
		BudgetMode:   tiktokdomain.BudgetModeDaily,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": s.cfg.TikTok.CampaignID,
			"budget":      amount,
			"error":       err.Error(),
		}).Error("tiktok: falha ao atualizar orçamento diário")
		return err
	}

	return nil
}
