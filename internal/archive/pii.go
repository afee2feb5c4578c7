package archive

import (
	"crypto/sha256"
	"fmt"
	"regexp"

	"github.com/swcleaning/ai-responder/internal/memory"
)

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phoneRe = regexp.MustCompile(`(?:\+44\s?7|07)\d{3}[-.\s]?\d{3}[-.\s]?\d{3}`)
)

// HashPhone returns the hex-encoded SHA-256 hash of a phone number.
func HashPhone(phone string) string {
	h := sha256.Sum256([]byte(phone))
	return fmt.Sprintf("%x", h)
}

// ScrubPII replaces emails with [EMAIL] and UK mobile numbers with [PHONE].
// Names are kept so archived threads stay readable.
func ScrubPII(text string) string {
	text = emailRe.ReplaceAllString(text, "[EMAIL]")
	text = phoneRe.ReplaceAllString(text, "[PHONE]")
	return text
}

// scrubConversation returns a copy with message bodies scrubbed and the
// customer phone replaced by its hash.
func scrubConversation(conv memory.Conversation) memory.Conversation {
	if conv.CustomerPhone != "" {
		conv.CustomerPhone = HashPhone(conv.CustomerPhone)
	}
	msgs := make([]memory.Message, len(conv.Messages))
	copy(msgs, conv.Messages)
	for i := range msgs {
		msgs[i].Content = ScrubPII(msgs[i].Content)
	}
	conv.Messages = msgs
	return conv
}
