package chat

import "portfolio-assistant/internal/llm"

// NormalizeHistory turns the displayed conversation into provider turns.
//
// A leading bot message is the client-side greeting and is dropped. Every
// other message becomes a user turn if the visitor wrote it and a model turn
// otherwise. An empty result fails with ErrInvalidConversation, since the
// provider cannot be called without turns.
func NormalizeHistory(messages []Message) ([]llm.Turn, error) {
	if len(messages) > 0 && messages[0].Sender == SenderBot {
		messages = messages[1:]
	}
	if len(messages) == 0 {
		return nil, ErrInvalidConversation
	}

	turns := make([]llm.Turn, len(messages))
	for i, m := range messages {
		role := llm.RoleModel
		if m.Sender == SenderUser {
			role = llm.RoleUser
		}
		turns[i] = llm.Turn{Role: role, Text: m.Text}
	}
	return turns, nil
}
