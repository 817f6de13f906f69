package session

import "portfolio-assistant/internal/chat"

// Greeting opens every conversation. It is shown to the visitor and sent back
// as the first message, where the server drops it.
const Greeting = "Hello! I'm a portfolio assistant. Ask me anything about Safkat's skills, projects, or experience."

// Apology replaces the pending reply when a request fails before any text arrived.
const Apology = "Sorry, I'm having trouble connecting right now. Please try again later."

// Status is the controller's request state.
type Status int

const (
	Idle Status = iota
	AwaitingResponse
	// Streaming is AwaitingResponse once the first fragment has been applied.
	Streaming
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case AwaitingResponse:
		return "awaiting_response"
	case Streaming:
		return "streaming"
	default:
		return "unknown"
	}
}

// Busy reports whether a request is outstanding.
func (s Status) Busy() bool {
	return s != Idle
}

// State is everything the chat widget renders.
type State struct {
	Open     bool
	Messages []chat.Message
	Input    string
	Status   Status
}

// clone returns a copy that shares no memory with s.
func (s State) clone() State {
	s.Messages = append([]chat.Message(nil), s.Messages...)
	return s
}
