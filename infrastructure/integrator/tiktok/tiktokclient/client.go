package tiktokclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	tiktokdomain "github.com/vfg2006/campaign-budget-bot/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/campaign-budget-bot/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const accessTokenHeader = "Access-Token"

type Client interface {
	GetGMVMaxReport(ctx context.Context, params ReportParams) (*tiktokdomain.ReportData, error)
	GetCampaign(ctx context.Context, advertiserID, campaignID string) (*tiktokdomain.Campaign, error)
	UpdateCampaignBudget(ctx context.Context, req tiktokdomain.UpdateBudgetRequest) error
}

type TikTokClient struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
}

func NewClient(cfg *config.Config) Client {
	return &TikTokClient{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TikTok.TimeoutSeconds) * time.Second,
		},
		baseURL:     strings.TrimRight(cfg.TikTok.URL, "/"),
		accessToken: cfg.TikTok.AccessToken,
	}
}

// do executa a chamada e devolve o campo data do envelope.
// Status HTTP fora de 2xx e code != 0 viram *tiktokdomain.APIError.
func (c *TikTokClient) do(ctx context.Context, method, path string, query url.Values, body any) (jsoniter.RawMessage, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "tiktok: erro ao serializar corpo da requisição")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, errors.Wrap(err, "tiktok: erro ao criar a requisição")
	}
	req.Header.Set(accessTokenHeader, c.accessToken)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "tiktok: erro ao chamar %s %s", method, path)
	}
	defer resp.Body.Close()

	return handleResponse(resp)
}

func handleResponse(resp *http.Response) (jsoniter.RawMessage, error) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "tiktok: erro ao ler resposta")
	}

	var envelope tiktokdomain.Response
	decodeErr := json.Unmarshal(raw, &envelope)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &tiktokdomain.APIError{
			HTTPStatus: resp.StatusCode,
			Message:    strings.TrimSpace(string(raw)),
		}
		if decodeErr == nil && envelope.Message != "" {
			apiErr.Code = envelope.Code
			apiErr.Message = envelope.Message
			apiErr.RequestID = envelope.RequestID
		}
		if apiErr.Message == "" {
			apiErr.Message = resp.Status
		}
		return nil, apiErr
	}

	if decodeErr != nil {
		return nil, errors.Wrap(decodeErr, "tiktok: resposta não é um JSON válido")
	}

	if envelope.Code != 0 {
		return nil, &tiktokdomain.APIError{
			HTTPStatus: resp.StatusCode,
			Code:       envelope.Code,
			Message:    envelope.Message,
			RequestID:  envelope.RequestID,
		}
	}

	logrus.WithFields(logrus.Fields{
		"request_id": envelope.RequestID,
		"status":     resp.StatusCode,
	}).Debug("tiktok: resposta recebida")

	return envelope.Data, nil
}
