package commanding

import "context"

// Notifier envia uma mensagem de texto para um chat
type Notifier interface {
	Send(ctx context.Context, chatID int64, text string) error
}
