package telegram

import (
	"context"

	"github.com/sirupsen/logrus"
	telegramdomain "github.com/vfg2006/campaign-budget-bot/infrastructure/integrator/telegram/domain"
	"github.com/vfg2006/campaign-budget-bot/infrastructure/integrator/telegram/telegramclient"
	"github.com/vfg2006/campaign-budget-bot/internal/config"
)

// Notifier envia as respostas do bot com Markdown e sem preview de links
type Notifier struct {
	cfg    *config.Config
	Client telegramclient.Client
}

func New(cfg *config.Config, client telegramclient.Client) *Notifier {
	return &Notifier{
		cfg:    cfg,
		Client: client,
	}
}

func (n *Notifier) Send(ctx context.Context, chatID int64, text string) error {
	_, err := n.Client.SendMessage(ctx, telegramclient.SendMessageRequest{
		ChatID:                chatID,
		Text:                  text,
		ParseMode:             telegramdomain.ParseModeMarkdown,
		DisableWebPagePreview: true,
	})
	return err
}

// RegisterWebhook aponta o bot para a URL pública configurada, com o segredo que o
// middleware do webhook espera receber
func (n *Notifier) RegisterWebhook(ctx context.Context) error {
	if n.cfg.Telegram.WebhookURL == "" {
		logrus.Info("telegram: TELEGRAM_WEBHOOK_URL vazio, registro do webhook ignorado")
		return nil
	}

	err := n.Client.SetWebhook(ctx, telegramclient.SetWebhookRequest{
		URL:            n.cfg.Telegram.WebhookURL,
		SecretToken:    n.cfg.Telegram.WebhookSecret,
		AllowedUpdates: []string{"message"},
	})
	if err != nil {
		return err
	}

	logrus.WithField("url", n.cfg.Telegram.WebhookURL).Info("telegram: webhook registrado")
	return nil
}
