package tiktok

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tiktokdomain "github.com/vfg2006/campaign-budget-bot/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/campaign-budget-bot/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/vfg2006/campaign-budget-bot/infrastructure/integrator/tiktok/tiktokclient/mocks"
	"github.com/vfg2006/campaign-budget-bot/internal/config"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.TikTok.AdvertiserID = "adv-1"
	cfg.TikTok.CampaignID = "camp-1"
	cfg.TikTok.StoreID = "store-1"
	return cfg
}

func metrics(cost, orders, gross string) map[string]tiktokdomain.Metric {
	return map[string]tiktokdomain.Metric{
		tiktokdomain.MetricCost:         tiktokdomain.NewMetric(cost),
		tiktokdomain.MetricOrders:       tiktokdomain.NewMetric(orders),
		tiktokdomain.MetricGrossRevenue: tiktokdomain.NewMetric(gross),
	}
}

func TestTikTokIntegrator_GetSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	integrator := New(testConfig(), client)

	date := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	client.EXPECT().
		GetGMVMaxReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params tiktokclient.ReportParams) (*tiktokdomain.ReportData, error) {
			assert.Equal(t, "adv-1", params.AdvertiserID)
			assert.Equal(t, []string{"store-1"}, params.StoreIDs)
			assert.Equal(t, "2024-05-10", params.StartDate)
			assert.Equal(t, "2024-05-10", params.EndDate)
			assert.Equal(t, []string{"camp-1"}, params.Filtering.CampaignIDs)

			return &tiktokdomain.ReportData{
				List: []tiktokdomain.ReportRow{
					{Metrics: metrics("100000.25", "2", "300000"), Dimensions: map[string]string{"campaign_id": "camp-1"}},
					{Metrics: metrics("20000", "1", "50000"), Dimensions: map[string]string{"campaign_id": "camp-1"}},
					{Metrics: metrics("99999", "9", "99999"), Dimensions: map[string]string{"campaign_id": "other"}},
				},
			}, nil
		})

	snapshot, err := integrator.GetSnapshot(context.Background(), date)
	require.NoError(t, err)
	assert.Equal(t, 120000.25, snapshot.Cost)
	assert.Equal(t, int64(3), snapshot.Orders)
	assert.Equal(t, float64(350000), snapshot.Gross)
	assert.Equal(t, date, snapshot.Date)
}

func TestTikTokIntegrator_GetSnapshot_EmptyReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	integrator := New(testConfig(), client)

	client.EXPECT().GetGMVMaxReport(gomock.Any(), gomock.Any()).Return(&tiktokdomain.ReportData{}, nil)

	snapshot, err := integrator.GetSnapshot(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Zero(t, snapshot.Cost)
	assert.Zero(t, snapshot.Orders)
	assert.Zero(t, snapshot.CPO())
}

func TestTikTokIntegrator_GetDailyBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	integrator := New(testConfig(), client)

	client.EXPECT().
		GetCampaign(gomock.Any(), "adv-1", "camp-1").
		Return(&tiktokdomain.Campaign{CampaignID: "camp-1", Budget: tiktokdomain.NewMetric("150000")}, nil)

	budget, err := integrator.GetDailyBudget(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float64(150000), budget.CurrentBudget)
}

func TestTikTokIntegrator_UpdateDailyBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	integrator := New(testConfig(), client)

	client.EXPECT().
		UpdateCampaignBudget(gomock.Any(), tiktokdomain.UpdateBudgetRequest{
			AdvertiserID: "adv-1",
			CampaignID:   "camp-1",
			Budget:       126000,
			BudgetMode:   tiktokdomain.BudgetModeDaily,
		}).
		Return(nil)

	assert.NoError(t, integrator.UpdateDailyBudget(context.Background(), 126000))

	upstream := errors.New("tiktok: budget too low")
	client.EXPECT().UpdateCampaignBudget(gomock.Any(), gomock.Any()).Return(upstream)

	assert.ErrorIs(t, integrator.UpdateDailyBudget(context.Background(), 1), upstream)
}
