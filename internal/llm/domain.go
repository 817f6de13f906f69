package llm

// Role tags a turn as coming from the visitor or from the model.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is one role-tagged utterance sent to the provider.
type Turn struct {
	// Role is who said it, "user" or "model".
	Role Role `json:"role"`
	// Text is what was said.
	Text string `json:"text"`
}

// GenerationRequest is everything the provider needs for one reply.
// It is built fresh for every call.
type GenerationRequest struct {
	// SystemInstruction is the grounding directive.
	SystemInstruction string
	// Turns is the dialogue history. The first turn is always a user turn.
	Turns []Turn
}
