package memory

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var smsSenderPattern = regexp.MustCompile(`SMSReply from ([A-Za-z]+ [A-Za-z]+)`)

// Store is an in-process conversation memory keyed by conversation ID.
// Callers construct and own it; nothing in this package holds a global
// instance. All methods are safe for concurrent use, and AddMessage performs
// append, type recomputation, entity capture, and tag accumulation as one
// unit under the lock.
type Store struct {
	mu            sync.Mutex
	conversations map[string]*Conversation
	now           func() time.Time
}

// NewStore returns an empty conversation store.
func NewStore() *Store {
	return &Store{
		conversations: make(map[string]*Conversation),
		now:           time.Now,
	}
}

// AddMessage classifies and records one message, creating the conversation
// on first contact. It returns the owning conversation's ID.
func (s *Store) AddMessage(content, context, sender string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := deriveConversationID(content)
	now := s.now()

	conv, ok := s.conversations[id]
	if !ok {
		conv = &Conversation{
			ID:        id,
			StartedAt: now,
			Status:    StatusActive,
			Tags:      []string{},
		}
		s.conversations[id] = conv
	}

	msg := Message{
		ID:             "msg_" + uuid.NewString(),
		ConversationID: id,
		Timestamp:      now,
		Type:           Classify(content, context),
		Content:        content,
		Context:        context,
		Sender:         sender,
	}

	conv.Messages = append(conv.Messages, msg)
	conv.LastActivity = now
	conv.Type = ConversationTypeOf(conv.Messages)

	s.captureEntities(conv, content, context)
	s.accumulateTags(conv, content, context)

	return id
}

// captureEntities fills customer fields from the message, first value wins.
func (s *Store) captureEntities(conv *Conversation, content, context string) {
	e := ExtractEntities(content, context)

	if e.Name != "" && conv.CustomerName == "" {
		conv.CustomerName = e.Name
	}
	if e.Phone != "" && conv.CustomerPhone == "" {
		conv.CustomerPhone = e.Phone
	}
	if len(e.Areas) > 0 {
		if conv.Business == nil {
			conv.Business = &BusinessContext{}
		}
		conv.Business.ServiceAreas = e.Areas
	}
}

func (s *Store) accumulateTags(conv *Conversation, content, context string) {
	for _, tag := range ExtractTags(content, context) {
		if !conv.HasTag(tag) {
			conv.Tags = append(conv.Tags, tag)
		}
	}
}

// deriveConversationID keeps messages from the same customer in one
// conversation: a recognizable name or phone number always maps to the same
// ID, SMS transcripts group by quoted sender, and anything else gets a
// random ID of its own.
func deriveConversationID(content string) string {
	if m := smsSenderPattern.FindStringSubmatch(content); m != nil {
		return "sms_thread_" + slug(m[1])
	}
	for _, re := range namePatterns {
		if m := re.FindStringSubmatch(content); m != nil {
			return "conv_" + slug(m[1])
		}
	}
	if m := phonePatterns[0].FindString(content); m != "" {
		return "conv_phone_" + m
	}
	return "conv_" + uuid.NewString()
}

func slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// Get returns a copy of the conversation, or false when unknown.
func (s *Store) Get(id string) (Conversation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[id]
	if !ok {
		return Conversation{}, false
	}
	return *conv, true
}

// PromptContext renders a conversation summary block for inclusion in a
// generation prompt. Unknown IDs yield an empty string.
func (s *Store) PromptContext(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[id]
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString("\nCONVERSATION MEMORY:\n")
	fmt.Fprintf(&b, "- Type: %s\n", conv.Type)
	fmt.Fprintf(&b, "- Status: %s\n", conv.Status)
	fmt.Fprintf(&b, "- Tags: %s\n", strings.Join(conv.Tags, ", "))

	if conv.CustomerName != "" {
		fmt.Fprintf(&b, "- Customer: %s\n", conv.CustomerName)
	}
	if conv.Business != nil && len(conv.Business.ServiceAreas) > 0 {
		fmt.Fprintf(&b, "- Service Areas Mentioned: %s\n", strings.Join(conv.Business.ServiceAreas, ", "))
	}

	fmt.Fprintf(&b, "- Message Count: %d\n", len(conv.Messages))
	fmt.Fprintf(&b, "- Last Activity: %s\n", conv.LastActivity.Format("02/01/2006"))

	recent := conv.Messages
	if len(recent) > 3 {
		recent = recent[len(recent)-3:]
	}
	if len(recent) > 0 {
		b.WriteString("\nRECENT MESSAGES:\n")
		for i, msg := range recent {
			fmt.Fprintf(&b, "%d. [%s] %s\n", i+1, msg.Type, truncate(msg.Content, 100))
		}
	}

	return b.String()
}

// truncate shortens s to n characters. It counts runes, not bytes, so a
// multi-byte character on the boundary is never split.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// Recommend gates whether the conversation warrants a customer-facing reply.
// An unknown ID is a safe no-op, not an error.
func (s *Store) Recommend(id string) Recommendation {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[id]
	if !ok {
		return Recommendation{
			ShouldRespond: false,
			ResponseType:  ResponseNone,
			Reason:        "No conversation context available",
		}
	}
	return RecommendFor(conv.Type)
}

// RecommendFor maps a conversation type to a response recommendation. The
// mapping is total and deterministic; a false ShouldRespond is a hard veto
// and the caller must not attempt customer-facing generation.
func RecommendFor(t ConversationType) Recommendation {
	switch t {
	case ConversationSMSReview:
		return Recommendation{
			ShouldRespond:   false,
			ResponseType:    ResponseInternalAnalysis,
			Reason:          "This appears to be SMS conversation history for internal review",
			SuggestedAction: "Analyze customer communication patterns and service delivery quality",
		}
	case ConversationInternal:
		return Recommendation{
			ShouldRespond:   false,
			ResponseType:    ResponseInternalAnalysis,
			Reason:          "Internal business communication detected",
			SuggestedAction: "Process as internal business data, no customer response needed",
		}
	case ConversationCustomerInquiry:
		return Recommendation{
			ShouldRespond:   true,
			ResponseType:    ResponseCustomerService,
			Reason:          "New customer inquiry requiring response",
			SuggestedAction: "Provide helpful information about services, pricing, and availability",
		}
	case ConversationExistingCustomer:
		return Recommendation{
			ShouldRespond:   true,
			ResponseType:    ResponseCustomerService,
			Reason:          "Existing customer communication",
			SuggestedAction: "Provide personalized response based on customer history",
		}
	default:
		return Recommendation{
			ShouldRespond:   true,
			ResponseType:    ResponseCustomerService,
			Reason:          "Default customer service response",
			SuggestedAction: "Provide general Somerset Window Cleaning assistance",
		}
	}
}

// Export returns copies of every conversation, for the admin surface and for
// archival.
func (s *Store) Export() []Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Conversation, 0, len(s.conversations))
	for _, conv := range s.conversations {
		out = append(out, *conv)
	}
	return out
}

// Len reports the number of stored conversations.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conversations)
}

// Cleanup removes conversations whose last activity is older than maxAgeDays
// and which are no longer active, returning the removed records so the
// caller can archive them.
func (s *Store) Cleanup(maxAgeDays int) []Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().AddDate(0, 0, -maxAgeDays)

	var removed []Conversation
	for id, conv := range s.conversations {
		if conv.LastActivity.Before(cutoff) && conv.Status != StatusActive {
			removed = append(removed, *conv)
			delete(s.conversations, id)
		}
	}
	return removed
}

// SetStatus updates a conversation's lifecycle status. Returns false when
// the conversation is unknown.
func (s *Store) SetStatus(id string, status Status) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[id]
	if !ok {
		return false
	}
	conv.Status = status
	return true
}
