package tiktokclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	tiktokdomain "github.com/vfg2006/campaign-budget-bot/infrastructure/integrator/tiktok/domain"
)

const gmvMaxReportPath = "/gmv_max/report/get/"

type ReportParams struct {
	AdvertiserID string                        `json:"advertiser_id"`
	StoreIDs     []string                      `json:"store_ids"`
	StartDate    string                        `json:"start_date"`
	EndDate      string                        `json:"end_date"`
	Dimensions   []string                      `json:"dimensions"`
	Metrics      []string                      `json:"metrics"`
	Filtering    *tiktokdomain.ReportFiltering `json:"filtering,omitempty"`
	Page         int                           `json:"page,omitempty"`
	PageSize     int                           `json:"page_size,omitempty"`
}

// Query serializa os parâmetros como a API espera na query string:
// listas e objetos em JSON, escalares como texto
func (p ReportParams) Query() (url.Values, error) {
	query := url.Values{}
	query.Set("advertiser_id", p.AdvertiserID)
	query.Set("start_date", p.StartDate)
	query.Set("end_date", p.EndDate)

	jsonParams := map[string]any{
		"store_ids":  p.StoreIDs,
		"dimensions": p.Dimensions,
		"metrics":    p.Metrics,
	}
	if p.Filtering != nil {
		jsonParams["filtering"] = p.Filtering
	}

	for key, value := range jsonParams {
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, errors.Wrapf(err, "tiktok: erro ao serializar %s", key)
		}
		query.Set(key, string(encoded))
	}

	if p.Page > 0 {
		query.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		query.Set("page_size", strconv.Itoa(p.PageSize))
	}

	return query, nil
}

// GetGMVMaxReport busca o relatório via POST com corpo JSON. Este endpoint, em algumas contas,
// recusa POST com 405; nesse caso a mesma consulta é refeita via GET com query string.
func (c *TikTokClient) GetGMVMaxReport(ctx context.Context, params ReportParams) (*tiktokdomain.ReportData, error) {
	data, err := c.do(ctx, http.MethodPost, gmvMaxReportPath, nil, params)

	var apiErr *tiktokdomain.APIError
	if errors.As(err, &apiErr) && apiErr.IsMethodNotAllowed() {
		logrus.WithField("path", gmvMaxReportPath).Info("tiktok: POST recusado no relatório, repetindo via GET")

		query, qErr := params.Query()
		if qErr != nil {
			return nil, qErr
		}
		data, err = c.do(ctx, http.MethodGet, gmvMaxReportPath, query, nil)
	}
	if err != nil {
		return nil, err
	}

	var report tiktokdomain.ReportData
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, errors.Wrap(err, "tiktok: erro ao decodificar relatório")
	}

	return &report, nil
}
