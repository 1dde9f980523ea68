package middleware

import (
	"net/http"

	"github.com/vfg2006/campaign-budget-bot/internal/usecases/access"
	"github.com/vfg2006/campaign-budget-bot/pkg/apiErrors"
	"github.com/vfg2006/campaign-budget-bot/pkg/log"
)

// WebhookSecretHeader é o header que o Telegram envia com o secret_token registrado no setWebhook
const WebhookSecretHeader = "X-Telegram-Bot-Api-Secret-Token"

// WebhookSecret rejeita com 403, sem resposta no chat, chamadas sem o segredo configurado
func WebhookSecret(expected string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !access.AuthorizeWebhook(r.Header.Get(WebhookSecretHeader), expected) {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"path":        r.URL.Path,
					"remote_addr": r.RemoteAddr,
				}).Warn("webhook: segredo inválido ou ausente")

				apiErrors.WriteError(w, apiErrors.ErrInvalidWebhookSecret, "Forbidden", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
