package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-budget-bot/internal/api/handler/router"
	"github.com/vfg2006/campaign-budget-bot/pkg/middleware"
)

// WebhookPath é a rota registrada no setWebhook do Telegram
const WebhookPath = "/telegram/webhook"

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Telegram(handler MessageHandler, webhookSecret string) []router.Route {
	return []router.Route{
		{
			Path:        WebhookPath,
			Method:      http.MethodPost,
			Handler:     Webhook(handler),
			Middlewares: []func(http.Handler) http.Handler{middleware.WebhookSecret(webhookSecret)},
		},
	}
}
