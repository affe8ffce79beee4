package engine

// ReplyRef identifies the message a choice was pressed on, so the router
// can edit that message in place or answer the press with a toast/alert.
type ReplyRef struct {
	ChatID     int64
	MessageID  int
	CallbackID string
}

// Event is an inbound chat event. It is a closed union: TextMessage,
// ChoiceSelected or ContactShared.
type Event interface {
	isEvent()
}

// TextMessage is free-form text typed by the user, including the main-menu
// reply-keyboard buttons (which arrive as plain text).
type TextMessage struct {
	UserID int64
	Text   string
}

// ChoiceSelected is a press on an inline keyboard button. Token is the
// opaque navigation token the button was rendered with.
type ChoiceSelected struct {
	UserID int64
	Token  string
	Reply  ReplyRef
}

// ContactShared is the user's contact card, carrying the phone number used
// to complete checkout.
type ContactShared struct {
	UserID      int64
	PhoneNumber string
}

func (TextMessage) isEvent()    {}
func (ChoiceSelected) isEvent() {}
func (ContactShared) isEvent()  {}
