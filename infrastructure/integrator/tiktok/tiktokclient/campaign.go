package tiktokclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	tiktokdomain "github.com/vfg2006/campaign-budget-bot/infrastructure/integrator/tiktok/domain"
)

const (
	campaignGetPath    = "/campaign/get/"
	campaignUpdatePath = "/campaign/update/"
)

var ErrCampaignNotFound = errors.New("tiktok: campanha não encontrada")

func (c *TikTokClient) GetCampaign(ctx context.Context, advertiserID, campaignID string) (*tiktokdomain.Campaign, error) {
	filtering, err := json.Marshal(tiktokdomain.ReportFiltering{CampaignIDs: []string{campaignID}})
	if err != nil {
		return nil, errors.Wrap(err, "tiktok: erro ao serializar filtro de campanha")
	}

	query := url.Values{}
	query.Set("advertiser_id", advertiserID)
	query.Set("filtering", string(filtering))

	data, err := c.do(ctx, http.MethodGet, campaignGetPath, query, nil)
	if err != nil {
		return nil, err
	}

	var campaigns tiktokdomain.CampaignList
	if err := json.Unmarshal(data, &campaigns); err != nil {
		return nil, errors.Wrap(err, "tiktok: erro ao decodificar campanhas")
	}

	for i := range campaigns.List {
		if campaigns.List[i].CampaignID == campaignID {
			return &campaigns.List[i], nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrCampaignNotFound, campaignID)
}

func (c *TikTokClient) UpdateCampaignBudget(ctx context.Context, req tiktokdomain.UpdateBudgetRequest) error {
	if req.BudgetMode == "" {
		req.BudgetMode = tiktokdomain.BudgetModeDaily
	}

	_, err := c.do(ctx, http.MethodPost, campaignUpdatePath, nil, req)
	return err
}
