// Package telegram adapts the Telegram Bot API to the engine's transport
// interface. All platform message types stay inside this package.
package telegram

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/example/storefront-bot/internal/engine"
	"github.com/example/storefront-bot/internal/view"
)

// Bot wraps an authorized Telegram bot client and implements
// engine.Transport.
type Bot struct {
	api *tgbotapi.BotAPI
}

func New(token string) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("authorize bot: %w", err)
	}
	return &Bot{api: api}, nil
}

// Username returns the bot account name, for startup logging.
func (b *Bot) Username() string {
	return b.api.Self.UserName
}

// Run long-polls for updates and feeds them to handle one at a time, in
// arrival order, until ctx is cancelled. Processing a single update fully
// before pulling the next one is what gives the engine its per-user
// ordering guarantee.
func (b *Bot) Run(ctx context.Context, handle func(context.Context, engine.Event) error) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	cfg.AllowedUpdates = []string{"message", "callback_query"}

	updates := b.api.GetUpdatesChan(cfg)
	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case upd, ok := <-updates:
			if !ok {
				return nil
			}
			ev := toEvent(upd)
			if ev == nil {
				continue
			}
			if err := handle(ctx, ev); err != nil {
				log.Printf("[Telegram] Handler error: %v", err)
			}
		}
	}
}

// toEvent converts a Telegram update into an engine event, or nil for
// updates the engine has no interest in.
func toEvent(upd tgbotapi.Update) engine.Event {
	if upd.CallbackQuery != nil {
		cb := upd.CallbackQuery
		ref := engine.ReplyRef{CallbackID: cb.ID}
		if cb.Message != nil {
			ref.ChatID = cb.Message.Chat.ID
			ref.MessageID = cb.Message.MessageID
		}
		return engine.ChoiceSelected{
			UserID: cb.From.ID,
			Token:  cb.Data,
			Reply:  ref,
		}
	}
	if upd.Message != nil {
		msg := upd.Message
		if msg.Contact != nil {
			return engine.ContactShared{
				UserID:      msg.From.ID,
				PhoneNumber: msg.Contact.PhoneNumber,
			}
		}
		if msg.Text != "" {
			return engine.TextMessage{UserID: msg.From.ID, Text: msg.Text}
		}
	}
	return nil
}

func (b *Bot) SendView(_ context.Context, userID int64, v view.View) error {
	if v.Image != "" {
		photo := tgbotapi.NewPhoto(userID, tgbotapi.FileURL(v.Image))
		photo.Caption = v.Text
		if len(v.Inline) > 0 {
			markup := inlineMarkup(v.Inline)
			photo.ReplyMarkup = &markup
		}
		_, err := b.api.Send(photo)
		return err
	}

	msg := tgbotapi.NewMessage(userID, v.Text)
	switch {
	case len(v.Inline) > 0:
		msg.ReplyMarkup = inlineMarkup(v.Inline)
	case len(v.Reply) > 0:
		msg.ReplyMarkup = replyMarkup(v.Reply)
	}
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) EditView(_ context.Context, ref engine.ReplyRef, v view.View) error {
	if len(v.Inline) > 0 {
		edit := tgbotapi.NewEditMessageTextAndMarkup(ref.ChatID, ref.MessageID, v.Text, inlineMarkup(v.Inline))
		_, err := b.api.Send(edit)
		return err
	}
	edit := tgbotapi.NewEditMessageText(ref.ChatID, ref.MessageID, v.Text)
	_, err := b.api.Send(edit)
	return err
}

func (b *Bot) Acknowledge(_ context.Context, ref engine.ReplyRef, text string) error {
	_, err := b.api.Request(tgbotapi.NewCallback(ref.CallbackID, text))
	return err
}

func (b *Bot) Alert(_ context.Context, ref engine.ReplyRef, text string) error {
	_, err := b.api.Request(tgbotapi.NewCallbackWithAlert(ref.CallbackID, text))
	return err
}

// RequestContact sends the prompt with a one-time share-contact reply
// keyboard.
func (b *Bot) RequestContact(_ context.Context, userID int64, prompt string) error {
	msg := tgbotapi.NewMessage(userID, prompt)
	kb := tgbotapi.NewOneTimeReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButtonContact("Поделиться контактом"),
		),
	)
	kb.ResizeKeyboard = true
	msg.ReplyMarkup = kb
	_, err := b.api.Send(msg)
	return err
}

func inlineMarkup(rows [][]view.Choice) tgbotapi.InlineKeyboardMarkup {
	kb := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, c := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(c.Label, c.Token))
		}
		kb = append(kb, buttons)
	}
	return tgbotapi.NewInlineKeyboardMarkup(kb...)
}

func replyMarkup(rows [][]string) tgbotapi.ReplyKeyboardMarkup {
	kb := make([][]tgbotapi.KeyboardButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]tgbotapi.KeyboardButton, 0, len(row))
		for _, label := range row {
			buttons = append(buttons, tgbotapi.NewKeyboardButton(label))
		}
		kb = append(kb, buttons)
	}
	markup := tgbotapi.NewReplyKeyboard(kb...)
	markup.ResizeKeyboard = true
	return markup
}
