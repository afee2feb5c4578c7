package memory

import "time"

// MessageType classifies a single inbound text.
type MessageType string

const (
	MessageCustomer     MessageType = "customer"
	MessageAIResponse   MessageType = "ai_response"
	MessageInternalNote MessageType = "internal_note"
	MessageSMSThread    MessageType = "sms_thread"
	MessageBusinessData MessageType = "business_data"
)

// ConversationType classifies a conversation from its full message history.
type ConversationType string

const (
	ConversationCustomerInquiry  ConversationType = "customer_inquiry"
	ConversationExistingCustomer ConversationType = "existing_customer"
	ConversationInternal         ConversationType = "internal_communication"
	ConversationSMSReview        ConversationType = "sms_thread_review"
)

// Status is the lifecycle state of a conversation.
type Status string

const (
	StatusActive         Status = "active"
	StatusResolved       Status = "resolved"
	StatusInternalReview Status = "internal_review"
	StatusArchived       Status = "archived"
)

// BusinessContext is a snapshot of business facts extracted from messages.
type BusinessContext struct {
	ServiceAreas []string `json:"serviceAreas,omitempty"`
	Services     []string `json:"services,omitempty"`
}

// Message is a single classified message. Messages are immutable once
// appended to a conversation.
type Message struct {
	ID             string      `json:"id"`
	ConversationID string      `json:"conversationId"`
	Timestamp      time.Time   `json:"timestamp"`
	Type           MessageType `json:"messageType"`
	Content        string      `json:"content"`
	Context        string      `json:"context,omitempty"`
	Sender         string      `json:"sender,omitempty"`
	Confidence     float64     `json:"confidence,omitempty"`
}

// Conversation aggregates every message sharing one inferred identity.
// Type and Tags are derived state: both are recomputed from the full
// message history on every append and must never be set directly.
type Conversation struct {
	ID            string           `json:"id"`
	CustomerName  string           `json:"customerName,omitempty"`
	CustomerEmail string           `json:"customerEmail,omitempty"`
	CustomerPhone string           `json:"customerPhone,omitempty"`
	StartedAt     time.Time        `json:"startedAt"`
	LastActivity  time.Time        `json:"lastActivity"`
	Status        Status           `json:"status"`
	Type          ConversationType `json:"conversationType"`
	Messages      []Message        `json:"messages"`
	Summary       string           `json:"summary,omitempty"`
	Tags          []string         `json:"tags"`
	Business      *BusinessContext `json:"businessContext,omitempty"`
}

// HasTag reports whether the conversation carries the given tag.
func (c *Conversation) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Entities holds structured facts extracted from free text. Absence of any
// field is a normal outcome, not an error.
type Entities struct {
	Name  string
	Phone string
	Areas []string
}

// ResponseType tells the caller what kind of output to produce.
type ResponseType string

const (
	ResponseCustomerService  ResponseType = "customer_service"
	ResponseInternalAnalysis ResponseType = "internal_analysis"
	ResponseNone             ResponseType = "no_response_needed"
)

// Recommendation gates whether a customer-facing reply should be generated.
// When ShouldRespond is false the caller must not invoke the generation
// service at all.
type Recommendation struct {
	ShouldRespond   bool         `json:"shouldRespond"`
	ResponseType    ResponseType `json:"responseType"`
	Reason          string       `json:"reason"`
	SuggestedAction string       `json:"suggestedAction,omitempty"`
}
