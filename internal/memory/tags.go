package memory

import "strings"

// tagRule maps a topical tag to the keywords that earn it. Keyword matching
// is case-insensitive substring containment against both the message and its
// context. Keyword lists come from the business's real message corpus and
// must not be tidied up: "sqgee.com" is the payment-link host and "£3" the
// standing loyalty discount quoted in SMS threads.
type tagRule struct {
	Tag      string
	Keywords []string
}

var tagRules = []tagRule{
	{"review", []string{"review", "star", "rating"}},
	{"complaint", []string{"complaint", "unhappy", "problem", "issue"}},
	{"pricing", []string{"price", "cost", "quote", "charge"}},
	{"scheduling", []string{"when", "available", "appointment", "book"}},
	{"gutter", []string{"gutter", "fascia", "soffit"}},
	{"window", []string{"window", "glass", "clean"}},
	{"regular_customer", []string{"gail", "regular", "existing"}},
	{"new_customer", []string{"new", "first time", "quote"}},
	{"sms_history", []string{"smsreply", "delivery details", "mar ", "jan "}},
	{"payment", []string{"payment", "invoice", "link", "sqgee.com"}},
	{"discount", []string{"discount", "£3", "offer"}},
	{"motorhome", []string{"motorhome", "caravan", "move"}},
}

// ExtractTags returns the tags earned by one message. Callers union the
// result into the conversation's tag set; tags accumulate and are never
// removed.
func ExtractTags(content, context string) []string {
	lc := strings.ToLower(content)
	lx := strings.ToLower(context)

	var tags []string
	for _, rule := range tagRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lc, kw) || strings.Contains(lx, kw) {
				tags = append(tags, rule.Tag)
				break
			}
		}
	}
	return tags
}
