package telegram

import (
	"context"

	"github.com/example/storefront-bot/internal/view"
)

// OperatorNotifier relays completed orders to the configured operator chat
// through the same bot account.
type OperatorNotifier struct {
	bot    *Bot
	chatID int64
}

func NewOperatorNotifier(bot *Bot, chatID int64) *OperatorNotifier {
	return &OperatorNotifier{bot: bot, chatID: chatID}
}

func (n *OperatorNotifier) NotifyOperator(ctx context.Context, text string) error {
	return n.bot.SendView(ctx, n.chatID, view.View{Text: text})
}
