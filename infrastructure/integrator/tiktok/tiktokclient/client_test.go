package tiktokclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tiktokdomain "github.com/vfg2006/campaign-budget-bot/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/campaign-budget-bot/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.TikTok.URL = server.URL
	cfg.TikTok.AccessToken = "token-123"
	cfg.TikTok.TimeoutSeconds = 5

	return NewClient(cfg)
}

func reportParams() ReportParams {
	return ReportParams{
		AdvertiserID: "adv-1",
		StoreIDs:     []string{"store-1"},
		StartDate:    "2024-05-10",
		EndDate:      "2024-05-10",
		Dimensions:   []string{tiktokdomain.DimensionCampaignID},
		Metrics:      []string{tiktokdomain.MetricCost, tiktokdomain.MetricOrders, tiktokdomain.MetricGrossRevenue},
		Filtering:    &tiktokdomain.ReportFiltering{CampaignIDs: []string{"camp-1"}},
	}
}

const reportBody = `{"code":0,"message":"OK","request_id":"r1","data":{"list":[{"metrics":{"cost":"120000.50","orders":"3","gross_revenue":450000},"dimensions":{"campaign_id":"camp-1"}}]}}`

func TestGetGMVMaxReport_Post(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/gmv_max/report/get/", r.URL.Path)
		assert.Equal(t, "token-123", r.Header.Get("Access-Token"))

		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), `"advertiser_id":"adv-1"`)
		assert.Contains(t, string(body), `"campaign_ids":["camp-1"]`)

		io.WriteString(w, reportBody)
	})

	report, err := client.GetGMVMaxReport(context.Background(), reportParams())
	require.NoError(t, err)
	require.Len(t, report.List, 1)

	row := report.List[0]
	assert.Equal(t, "120000.5", row.Metric(tiktokdomain.MetricCost).String())
	assert.Equal(t, int64(3), row.Metric(tiktokdomain.MetricOrders).IntPart())
	assert.Equal(t, "450000", row.Metric(tiktokdomain.MetricGrossRevenue).String())
	assert.True(t, row.Metric("unknown").IsZero())
}

func TestGetGMVMaxReport_FallbackToGetOnMethodNotAllowed(t *testing.T) {
	var methods []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method)

		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		query := r.URL.Query()
		assert.Equal(t, "adv-1", query.Get("advertiser_id"))
		assert.Equal(t, "2024-05-10", query.Get("start_date"))
		assert.Equal(t, `["store-1"]`, query.Get("store_ids"))
		assert.Equal(t, `["cost","orders","gross_revenue"]`, query.Get("metrics"))
		assert.Equal(t, `{"campaign_ids":["camp-1"]}`, query.Get("filtering"))

		io.WriteString(w, reportBody)
	})

	report, err := client.GetGMVMaxReport(context.Background(), reportParams())
	require.NoError(t, err)
	assert.Len(t, report.List, 1)
	assert.Equal(t, []string{http.MethodPost, http.MethodGet}, methods)
}

func TestGetGMVMaxReport_NoFallbackOnOtherErrors(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"code":50000,"message":"System error","request_id":"r2"}`)
	})

	_, err := client.GetGMVMaxReport(context.Background(), reportParams())
	require.Error(t, err)
	assert.Equal(t, 1, calls)

	var apiErr *tiktokdomain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.HTTPStatus)
	assert.Equal(t, "System error", apiErr.Message)
}

func TestGetCampaign(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/campaign/get/", r.URL.Path)
		assert.Equal(t, `{"campaign_ids":["camp-1"]}`, r.URL.Query().Get("filtering"))

		io.WriteString(w, `{"code":0,"message":"OK","data":{"list":[{"campaign_id":"camp-1","campaign_name":"GMV Max","budget":150000.0,"budget_mode":"BUDGET_MODE_DAY"}]}}`)
	})

	campaign, err := client.GetCampaign(context.Background(), "adv-1", "camp-1")
	require.NoError(t, err)
	assert.Equal(t, "GMV Max", campaign.CampaignName)
	assert.Equal(t, float64(150000), campaign.Budget.InexactFloat64())
}

func TestGetCampaign_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"code":0,"message":"OK","data":{"list":[]}}`)
	})

	_, err := client.GetCampaign(context.Background(), "adv-1", "camp-1")
	assert.ErrorIs(t, err, ErrCampaignNotFound)
}

func TestUpdateCampaignBudget(t *testing.T) {
	t.Run("sucesso envia modo diário", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/campaign/update/", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"advertiser_id":"adv-1","campaign_id":"camp-1","budget":126000,"budget_mode":"BUDGET_MODE_DAY"}`, string(body))

			io.WriteString(w, `{"code":0,"message":"OK","data":{"campaign_id":"camp-1"}}`)
		})

		err := client.UpdateCampaignBudget(context.Background(), tiktokdomain.UpdateBudgetRequest{
			AdvertiserID: "adv-1",
			CampaignID:   "camp-1",
			Budget:       126000,
		})
		assert.NoError(t, err)
	})

	t.Run("code diferente de zero vira erro com a mensagem da plataforma", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"code":40002,"message":"Budget must be at least 105% of the current spend","request_id":"r3"}`)
		})

		err := client.UpdateCampaignBudget(context.Background(), tiktokdomain.UpdateBudgetRequest{
			AdvertiserID: "adv-1",
			CampaignID:   "camp-1",
			Budget:       1,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Budget must be at least 105% of the current spend")
		assert.Contains(t, err.Error(), "r3")
	})
}
