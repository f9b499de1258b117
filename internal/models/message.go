package models

// Message represents a single message in a conversation
type Message struct {
	Role    string `json:"role"`    // "system", "user", "assistant"
	Content string `json:"content"` // The message content
}

// DefaultExchange returns the fixed two-message exchange the exporter
// renders: a system prompt plus a user turn holding the content placeholder.
func DefaultExchange() []Message {
	return []Message{
		{Role: RoleSystem, Content: DefaultSystemPrompt},
		{Role: RoleUser, Content: ContentPlaceholder},
	}
}
