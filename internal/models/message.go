// ABOUTME: Chat transcript and completion history types
// ABOUTME: ChatMessage is the rendered transcript; ChatTurn is what the completion capability sees
package models

import (
	"time"

	"github.com/google/uuid"
)

// Chat roles as sent to the text-completion capability.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// ChatMessage is a single rendered message in the session transcript.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// NewChatMessage creates a transcript message with a fresh ID.
func NewChatMessage(role, text string) ChatMessage {
	return ChatMessage{
		ID:        "msg_" + uuid.New().String(),
		Role:      role,
		Text:      text,
		Timestamp: time.Now().UTC(),
	}
}

// ChatTurn is one (role, content) pair forwarded to the completion capability.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
