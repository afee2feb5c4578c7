package memory

import "strings"

// classifierRule is one entry in the ordered classification table. Rules are
// evaluated top to bottom and the first match wins, so precedence lives in
// the table order rather than in control flow.
type classifierRule struct {
	Type  MessageType
	Match func(content, context string) bool
}

// SMS transcript markers are matched case-sensitively: "Mar " must not match
// "marketing" and the export format always capitalizes these.
var smsMarkers = []string{
	"SMSReply from",
	"SMS sent by",
	"delivery details",
	"Mar ",
	"Jan ",
	"Jul ",
}

var businessDataContent = []string{
	"appointment is scheduled",
	"payment using the following link",
	"invoice",
}

var businessDataContext = []string{
	"internal",
	"review",
}

var customerMarkers = []string{
	"quote",
	"window clean",
	"how much",
	"service",
	"when can",
	"available",
}

var aiResponseMarkers = []string{
	"somerset window cleaning",
	"thank you for contacting",
	"info@somersetwindowcleaning.co.uk",
}

// classifierRules orders message-type detection. SMS transcripts must win
// over inquiry keywords because the quoted customer turn inside a transcript
// usually contains inquiry language itself.
var classifierRules = []classifierRule{
	{
		Type: MessageSMSThread,
		Match: func(content, _ string) bool {
			return containsAny(content, smsMarkers)
		},
	},
	{
		Type: MessageBusinessData,
		Match: func(content, context string) bool {
			lc := strings.ToLower(content)
			lx := strings.ToLower(context)
			return containsAny(lc, businessDataContent) ||
				containsAny(lx, businessDataContent) ||
				containsAny(lx, businessDataContext)
		},
	},
	{
		Type: MessageCustomer,
		Match: func(content, _ string) bool {
			return containsAny(strings.ToLower(content), customerMarkers)
		},
	},
	{
		Type: MessageAIResponse,
		Match: func(content, _ string) bool {
			return containsAny(strings.ToLower(content), aiResponseMarkers)
		},
	},
}

// Classify assigns a message type from the ordered rule table. Messages that
// match no rule are internal notes.
func Classify(content, context string) MessageType {
	for _, rule := range classifierRules {
		if rule.Match(content, context) {
			return rule.Type
		}
	}
	return MessageInternalNote
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// existingCustomerMarkers identify messages from known regulars. "gail" is a
// long-standing regular customer who appears throughout the SMS exports.
var existingCustomerMarkers = []string{"gail", "existing", "regular"}

// ConversationTypeOf reduces a full message history to a conversation type.
// It is a pure function of the history and is recomputed from scratch on
// every append, so a single transcript message anywhere in the history
// permanently reclassifies the conversation as a review case.
func ConversationTypeOf(messages []Message) ConversationType {
	for _, m := range messages {
		if m.Type == MessageSMSThread || m.Type == MessageBusinessData {
			return ConversationSMSReview
		}
	}

	for _, m := range messages {
		if m.Type != MessageCustomer {
			continue
		}
		lc := strings.ToLower(m.Content)
		if strings.Contains(lc, "quote") || strings.Contains(lc, "new") {
			return ConversationCustomerInquiry
		}
	}

	for _, m := range messages {
		if containsAny(strings.ToLower(m.Content), existingCustomerMarkers) {
			return ConversationExistingCustomer
		}
	}

	return ConversationInternal
}
