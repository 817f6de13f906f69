package chat

// Sender is who authored a displayed message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is one entry of the conversation as the visitor sees it.
type Message struct {
	// Sender is "user" or "bot".
	Sender Sender `json:"sender" validate:"oneof=user bot"`
	// Text is the content of the message.
	Text string `json:"text"`
}
