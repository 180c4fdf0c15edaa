package chat

// Message roles mirror the chat completion API.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type SendMessageRequest struct {
	Message string    `json:"message"`
	History []Message `json:"history"`
	Passage string    `json:"passage"`
}

type ReflectionQuestionsRequest struct {
	Reference string `json:"reference"`
	Text      string `json:"text"`
}
