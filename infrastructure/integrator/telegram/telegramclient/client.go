package telegramclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	telegramdomain "github.com/vfg2006/campaign-budget-bot/infrastructure/integrator/telegram/domain"
	"github.com/vfg2006/campaign-budget-bot/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	SendMessage(ctx context.Context, req SendMessageRequest) (*telegramdomain.Message, error)
	SetWebhook(ctx context.Context, req SetWebhookRequest) error
}

type TelegramClient struct {
	httpClient *http.Client
	apiURL     string
	token      string
}

func NewClient(cfg *config.Config) Client {
	return &TelegramClient{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		apiURL: strings.TrimRight(cfg.Telegram.APIURL, "/"),
		token:  cfg.Telegram.BotToken,
	}
}

type SendMessageRequest struct {
	ChatID                int64  `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode,omitempty"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview,omitempty"`
}

type SetWebhookRequest struct {
	URL            string   `json:"url"`
	SecretToken    string   `json:"secret_token,omitempty"`
	AllowedUpdates []string `json:"allowed_updates,omitempty"`
}

func (c *TelegramClient) SendMessage(ctx context.Context, req SendMessageRequest) (*telegramdomain.Message, error) {
	result, err := c.call(ctx, "sendMessage", req)
	if err != nil {
		return nil, err
	}

	var message telegramdomain.Message
	if err := json.Unmarshal(result, &message); err != nil {
		return nil, errors.Wrap(err, "telegram: erro ao decodificar mensagem enviada")
	}

	return &message, nil
}

func (c *TelegramClient) SetWebhook(ctx context.Context, req SetWebhookRequest) error {
	_, err := c.call(ctx, "setWebhook", req)
	return err
}

// call faz POST em {api}/bot{token}/{method}. O token nunca aparece nas mensagens de erro.
func (c *TelegramClient) call(ctx context.Context, method string, body any) (jsoniter.RawMessage, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrapf(err, "telegram: erro ao serializar %s", method)
	}

	endpoint := fmt.Sprintf("%s/bot%s/%s", c.apiURL, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Errorf("telegram: erro ao criar requisição %s", method)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// o erro de transporte inclui a URL, e com ela o token
		return nil, errors.Errorf("telegram: erro ao chamar %s: %s", method, strings.ReplaceAll(err.Error(), c.token, "***"))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "telegram: erro ao ler resposta")
	}

	var envelope telegramdomain.Response
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &telegramdomain.APIError{
			HTTPStatus:  resp.StatusCode,
			Description: strings.TrimSpace(string(raw)),
		}
	}

	if !envelope.OK {
		return nil, &telegramdomain.APIError{
			HTTPStatus:  resp.StatusCode,
			ErrorCode:   envelope.ErrorCode,
			Description: envelope.Description,
		}
	}

	return envelope.Result, nil
}
