package handler

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	telegramdomain "github.com/vfg2006/campaign-budget-bot/infrastructure/integrator/telegram/domain"
	"github.com/vfg2006/campaign-budget-bot/internal/domain"
	"github.com/vfg2006/campaign-budget-bot/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Limite do corpo aceito no webhook; updates de texto ficam muito abaixo disso
const maxWebhookBody = 1 << 20

// MessageHandler processa uma mensagem já autenticada
type MessageHandler interface {
	Handle(ctx context.Context, msg domain.IncomingMessage)
}

// Webhook responde sempre 200 "ok" para o Telegram não reenviar o update.
// Updates sem mensagem, chat ou remetente são só confirmados.
func Webhook(handler MessageHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var update telegramdomain.Update
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxWebhookBody)).Decode(&update); err != nil {
			logger.WithError(err).Warn("webhook: corpo inválido, ignorado")
			writeAck(w)
			return
		}

		msg, ok := toIncomingMessage(update)
		if !ok {
			logger.WithField("update_id", update.UpdateID).Debug("webhook: update sem mensagem, chat ou remetente")
			writeAck(w)
			return
		}

		// Depois de iniciado o processamento vai até o fim, mesmo se o Telegram desconectar
		handler.Handle(context.WithoutCancel(r.Context()), msg)

		writeAck(w)
	})
}

func toIncomingMessage(update telegramdomain.Update) (domain.IncomingMessage, bool) {
	m := update.Message
	if m == nil || m.Chat == nil || m.From == nil || m.Chat.ID == 0 || m.From.ID == 0 {
		return domain.IncomingMessage{}, false
	}

	return domain.IncomingMessage{
		ChatID: m.Chat.ID,
		UserID: m.From.ID,
		Text:   m.Text,
	}, true
}

func writeAck(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
