package chat

import (
	"context"
	"fmt"
	"log"
	"strings"
)

const basePrompt = `You are a thoughtful, knowledgeable Bible study assistant for BibleThink, an app that helps people engage deeply with scripture.

Your role is to:
- Help users understand Bible passages through historical, cultural, and literary context
- Ask thought-provoking questions that encourage personal reflection
- Provide insights without being dogmatic or prescriptive
- Respect diverse interpretations and faith traditions
- Be warm, encouraging, and non-judgmental
- Keep responses concise and accessible (2-3 paragraphs max)

You are NOT:
- A preacher or authority figure
- Trying to convert or convince anyone
- Providing absolute interpretations
- Being overly formal or academic

Remember: The goal is to help people THINK about scripture, not tell them what to think.`

// defaultQuestions is the fallback when the provider fails or replies in
// an unexpected shape.
var defaultQuestions = []string{
	"What stands out to you in this passage?",
	"How might this apply to your life today?",
	"What questions does this raise for you?",
}

type ChatService struct {
	client *Client
}

func NewChatService(client *Client) ChatService {
	return ChatService{client: client}
}

// SendMessage builds the full conversation (system prompt, prior history,
// new user message) and returns the assistant's reply.
func (s *ChatService) SendMessage(ctx context.Context, userMessage string, history []Message, currentPassage string) (string, error) {
	messages := make([]Message, 0, len(history)+2)
	messages = append(messages, Message{
		Role:    RoleSystem,
		Content: systemPrompt(currentPassage),
	})
	messages = append(messages, history...)
	messages = append(messages, Message{
		Role:    RoleUser,
		Content: userMessage,
	})

	return s.client.Complete(ctx, messages)
}

// ReflectionQuestions asks for exactly three open-ended questions about a
// passage, falling back to the defaults on any failure.
func (s *ChatService) ReflectionQuestions(ctx context.Context, reference, text string) []string {
	prompt := fmt.Sprintf(`Generate 3 thoughtful reflection questions for this Bible passage.
Make them invitational and open-ended, encouraging personal contemplation.

Passage: %s
Text: %s

Format: Return ONLY the 3 questions, one per line, no numbering or bullets.`, reference, text)

	reply, err := s.SendMessage(ctx, prompt, nil, "")
	if err != nil {
		log.Printf("reflection questions fell back to defaults: %v", err)
		return defaultQuestions
	}

	var questions []string
	for _, line := range strings.Split(reply, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			questions = append(questions, line)
		}
	}
	if len(questions) < 3 {
		return defaultQuestions
	}
	return questions[:3]
}

func systemPrompt(currentPassage string) string {
	if currentPassage == "" {
		return basePrompt
	}
	return fmt.Sprintf(`%s

CURRENT PASSAGE CONTEXT:
The user is currently reading: %s

When they ask questions without specifying a passage, assume they're asking about this one.`, basePrompt, currentPassage)
}
