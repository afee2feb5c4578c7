package training

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggest_NoMatchFallback(t *testing.T) {
	m := NewMatcher()

	got := m.Suggest("asdjkl qwop", "")

	assert.Equal(t, 0.3, got.Confidence)
	assert.Equal(t, "unknown", got.MessageType)
	assert.Contains(t, got.SuggestedResponse, "No specific pattern matched")
	assert.Contains(t, got.BusinessLessons, "Consider adding this scenario to training data")
}

func TestSuggest_HighestConfidenceWins(t *testing.T) {
	m := NewMatcher()

	// Contains both praise (0.9) and SMS transcript (0.95) triggers.
	got := m.Suggest("SMSReply from Gail Ward: I left a 5 star review", "")

	assert.Equal(t, 0.95, got.Confidence)
	assert.Contains(t, got.SuggestedResponse, "INTERNAL ANALYSIS")
	assert.NotContains(t, got.SuggestedResponse, "{message_type}")
	assert.NotContains(t, got.SuggestedResponse, "{analysis_summary}")
}

func TestSuggest_PraiseTemplate(t *testing.T) {
	m := NewMatcher()

	got := m.Suggest("Hi Gail here, I left you a 5 star review, brilliant work", "")

	require.Equal(t, 0.9, got.Confidence)
	assert.Contains(t, got.SuggestedResponse, "5-star review")
	assert.Contains(t, got.SuggestedResponse, ", Gail")
	assert.NotContains(t, got.SuggestedResponse, "{")
}

func TestSuggest_InquiryTemplate(t *testing.T) {
	m := NewMatcher()

	got := m.Suggest("How much would a gutter clean cost in Keynsham?", "")

	// "cost" and "how much" hit the inquiry pattern at 0.8; no higher
	// pattern triggers.
	require.Equal(t, 0.8, got.Confidence)
	assert.Contains(t, got.SuggestedResponse, "gutter")
	assert.Contains(t, got.SuggestedResponse, "We serve Keynsham and surrounding areas.")
	assert.NotContains(t, got.SuggestedResponse, "{")
}

func TestSuggest_ComplaintTemplate(t *testing.T) {
	m := NewMatcher()

	got := m.Suggest("You missed the back windows and they are still dirty", "")

	require.Equal(t, 0.85, got.Confidence)
	assert.Contains(t, got.SuggestedResponse, "missed the back windows")
	assert.Contains(t, got.SuggestedResponse, "48-hour service guarantee")
}

func TestSuggest_ReasoningQuotesBareTrigger(t *testing.T) {
	m := NewMatcher()

	got := m.Suggest("how much for a first time clean?", "")

	// Staff see the trigger keywords, not the compiled regex.
	assert.Contains(t, got.Reasoning, "Matched pattern: quote|price|cost|new|first time|how much.")
	assert.NotContains(t, got.Reasoning, "(?i)")
}

func TestSuggest_SimilarExampleLessons(t *testing.T) {
	m := NewMatcher()

	// Near-verbatim repeat of the catalogued new-customer inquiry.
	got := m.Suggest("Hi, I would like a quote for regular window cleaning for my 3-bedroom house in Weston-super-Mare. What are your prices?", "")

	assert.Equal(t, string(ExampleCustomerInquiry), got.MessageType)
	assert.Contains(t, got.BusinessLessons, "Confirm service area coverage")

	// Lessons are deduplicated.
	seen := make(map[string]int)
	for _, l := range got.BusinessLessons {
		seen[l]++
		assert.Equal(t, 1, seen[l], "duplicate lesson %q", l)
	}
}

func TestSuggest_TemplatesNeverLeakPlaceholders(t *testing.T) {
	m := NewMatcher()

	messages := []string{
		"brilliant work on the review",
		"SMS sent by Dan with delivery details",
		"what's the price for a first time clean?",
		"there is a problem with the conservatory",
		"when is my next appointment?",
	}
	for _, msg := range messages {
		got := m.Suggest(msg, "")
		assert.NotContains(t, got.SuggestedResponse, "{", "placeholder leaked for %q", msg)
		assert.NotContains(t, got.SuggestedResponse, "}", "placeholder leaked for %q", msg)
	}
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("window clean", "window clean"))
	assert.Equal(t, 0.0, Similarity("abc def", "ghi jkl"))
	assert.Equal(t, 0.0, Similarity("", "anything"))

	got := Similarity("the quick brown fox", "the quick red fox jumps high")
	assert.InDelta(t, 0.5, got, 1e-9) // 3 common / max(4, 6)
}

func TestSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"window clean quote please", "quote for window cleaning"},
		{"gail gail gail", "gail ward"},
		{"Hello THERE", "hello there friend"},
	}
	for _, p := range pairs {
		assert.Equal(t, Similarity(p[0], p[1]), Similarity(p[1], p[0]), "asymmetric for %q / %q", p[0], p[1])
	}
}

func TestInsights(t *testing.T) {
	m := NewMatcher()

	got := m.Insights()

	assert.Equal(t, 5, got.TotalExamples)
	assert.Equal(t, 1, got.MessageTypes[string(ExamplePraise)])
	assert.Equal(t, 1, got.MessageTypes[string(ExampleComplaint)])
	assert.Equal(t, 4, got.QualityDistribution[string(QualityExcellent)])
	assert.Equal(t, 1, got.QualityDistribution[string(QualityGood)])
	assert.LessOrEqual(t, len(got.CommonTags), 10)
	assert.NotEmpty(t, got.BusinessLessons)

	// Lessons are unique.
	seen := make(map[string]struct{})
	for _, l := range got.BusinessLessons {
		_, dup := seen[l]
		assert.False(t, dup, "duplicate lesson %q", l)
		seen[l] = struct{}{}
	}
}

func TestExamples_CatalogueShape(t *testing.T) {
	m := NewMatcher()

	for _, ex := range m.Examples() {
		assert.NotEmpty(t, ex.ID)
		assert.NotEmpty(t, ex.CustomerMessage)
		assert.NotEmpty(t, ex.ExpectedResponse)
		assert.NotEmpty(t, ex.BusinessLessons)
		assert.False(t, strings.Contains(ex.ID, " "))
	}
}
