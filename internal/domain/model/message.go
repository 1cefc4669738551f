package model

import (
	"time"

	"github.com/google/uuid"
)

type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// ChatMessage is one entry in the conversation transcript.
type ChatMessage struct {
	ID        string
	Sender    Sender
	Text      string
	Timestamp time.Time
}

// Transcript is the ordered, append-only record of all chat messages in the
// session. Messages are never mutated or removed once added; ordering is
// arrival order.
type Transcript struct {
	messages []ChatMessage
}

func NewTranscript() *Transcript {
	return &Transcript{messages: make([]ChatMessage, 0, 16)}
}

func (t *Transcript) Append(sender Sender, text string) ChatMessage {
	m := ChatMessage{
		ID:        uuid.NewString(),
		Sender:    sender,
		Text:      text,
		Timestamp: time.Now(),
	}
	t.messages = append(t.messages, m)
	return m
}

func (t *Transcript) Len() int { return len(t.messages) }

// Messages returns a copy so callers cannot mutate the transcript.
func (t *Transcript) Messages() []ChatMessage {
	out := make([]ChatMessage, len(t.messages))
	copy(out, t.messages)
	return out
}

// Last returns the most recent message, if any.
func (t *Transcript) Last() (ChatMessage, bool) {
	if len(t.messages) == 0 {
		return ChatMessage{}, false
	}
	return t.messages[len(t.messages)-1], true
}
