package engine

import (
	"context"

	"github.com/example/storefront-bot/internal/view"
)

// Transport is the outbound side of the chat platform. The router is the
// only caller; it never sees platform message types, only views.
type Transport interface {
	// SendView delivers a new message to the user.
	SendView(ctx context.Context, userID int64, v view.View) error
	// EditView replaces the text and keyboard of an existing message.
	EditView(ctx context.Context, ref ReplyRef, v view.View) error
	// Acknowledge answers a button press, optionally with a transient toast.
	Acknowledge(ctx context.Context, ref ReplyRef, text string) error
	// Alert answers a button press with a blocking alert.
	Alert(ctx context.Context, ref ReplyRef, text string) error
	// RequestContact asks the platform to offer the user a share-contact
	// button.
	RequestContact(ctx context.Context, userID int64, prompt string) error
}

// Notifier delivers a completed order to the human operator. Delivery is
// best-effort; a failure never rolls back the order.
type Notifier interface {
	NotifyOperator(ctx context.Context, text string) error
}
