package archive

import (
	"strings"
	"testing"

	"github.com/swcleaning/ai-responder/internal/memory"
)

func TestScrubPII(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"email", "reach me at gail.ward@example.com please", "reach me at [EMAIL] please"},
		{"uk mobile", "call 07123456789 after 5", "call [PHONE] after 5"},
		{"uk mobile spaced", "call 07123 456 789 after 5", "call [PHONE] after 5"},
		{"intl prefix", "my number is +447123456789", "my number is [PHONE]"},
		{"clean text", "see you Thursday", "see you Thursday"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ScrubPII(tc.in); got != tc.want {
				t.Errorf("ScrubPII(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestHashPhone(t *testing.T) {
	a := HashPhone("07123456789")
	b := HashPhone("07123456789")
	if a != b {
		t.Error("hash must be deterministic")
	}
	if len(a) != 64 {
		t.Errorf("expected sha256 hex length 64, got %d", len(a))
	}
	if strings.Contains(a, "07123") {
		t.Error("hash must not contain the raw number")
	}
}

func TestScrubConversation(t *testing.T) {
	conv := memory.Conversation{
		ID:            "conv_gail",
		CustomerPhone: "07123456789",
		Messages: []memory.Message{
			{ID: "msg_1", Content: "email gail@example.com for the invoice"},
		},
	}

	scrubbed := scrubConversation(conv)

	if scrubbed.CustomerPhone == conv.CustomerPhone {
		t.Error("customer phone should be hashed")
	}
	if !strings.Contains(scrubbed.Messages[0].Content, "[EMAIL]") {
		t.Errorf("message not scrubbed: %q", scrubbed.Messages[0].Content)
	}
	// Input must stay untouched.
	if conv.Messages[0].Content != "email gail@example.com for the invoice" {
		t.Error("scrub must copy, not mutate")
	}
}
