package respond

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swcleaning/ai-responder/internal/knowledge"
	"github.com/swcleaning/ai-responder/internal/memory"
	"github.com/swcleaning/ai-responder/internal/training"
)

type fakeLLM struct {
	requests []LLMRequest
	response LLMResponse
	err      error
}

func (f *fakeLLM) Complete(_ context.Context, req LLMRequest) (LLMResponse, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return LLMResponse{}, f.err
	}
	return f.response, nil
}

func newTestService(llm LLMClient) *Service {
	return NewService(
		memory.NewStore(),
		training.NewMatcher(),
		knowledge.NewStaticRepository(),
		llm,
		nil,
		WithModel("anthropic.claude-3-haiku-20240307-v1:0", 1000, 0.7),
	)
}

func TestRespond_VetoNeverCallsLLM(t *testing.T) {
	llm := &fakeLLM{response: LLMResponse{Text: "should not be used"}}
	svc := newTestService(llm)

	res, err := svc.Respond(context.Background(), Request{
		Message: "SMSReply from Gail Ward Mar 15 delivery details",
	})
	require.NoError(t, err)

	assert.Empty(t, llm.requests, "veto path must not invoke the LLM")
	assert.False(t, res.Generated)
	assert.False(t, res.Recommendation.ShouldRespond)
	assert.Equal(t, memory.ResponseInternalAnalysis, res.Recommendation.ResponseType)
	assert.Contains(t, res.Content, "INTERNAL ANALYSIS")
	assert.Equal(t, 0.95, res.Confidence)
}

func TestRespond_InternalNoteVetoed(t *testing.T) {
	llm := &fakeLLM{}
	svc := newTestService(llm)

	res, err := svc.Respond(context.Background(), Request{Message: "remember to refill the van"})
	require.NoError(t, err)

	assert.Empty(t, llm.requests)
	assert.False(t, res.Recommendation.ShouldRespond)
}

func TestRespond_GeneratesForCustomerInquiry(t *testing.T) {
	llm := &fakeLLM{response: LLMResponse{
		Text: "We'd be happy to quote for Window Cleaning in Keynsham. Email info@somersetwindowcleaning.co.uk to arrange a visit, we are available next week.",
	}}
	svc := newTestService(llm)

	res, err := svc.Respond(context.Background(), Request{
		Message: "Hi, I would like a quote for regular window cleaning for my 3-bedroom house in Keynsham.",
	})
	require.NoError(t, err)
	require.Len(t, llm.requests, 1)

	assert.True(t, res.Generated)
	assert.True(t, res.Recommendation.ShouldRespond)
	assert.Equal(t, llm.response.Text, res.Content)

	// Grounded reply: service + area + length + contact = 0.5+0.2+0.2+0.1+0.1.
	assert.InDelta(t, 1.0, res.Confidence, 1e-9)
	assert.Empty(t, res.Suggestions, "no suggestions at high confidence")

	assert.Contains(t, res.BusinessContext.ServiceAreas, "Keynsham")
	assert.Contains(t, res.BusinessContext.SuggestedServices, "Window Cleaning")
	assert.NotEmpty(t, res.BusinessContext.AvailableDates)
}

func TestRespond_SystemPromptAssembly(t *testing.T) {
	llm := &fakeLLM{response: LLMResponse{Text: "ok"}}
	svc := newTestService(llm)

	_, err := svc.Respond(context.Background(), Request{
		Message:       "Hi Gail, how much is a window clean quote?",
		CustomerEmail: "gail@example.com",
	})
	require.NoError(t, err)
	require.Len(t, llm.requests, 1)

	req := llm.requests[0]
	assert.Equal(t, "anthropic.claude-3-haiku-20240307-v1:0", req.Model)
	assert.Equal(t, int32(1000), req.MaxTokens)

	require.Len(t, req.System, 1)
	prompt := req.System[0]
	for _, want := range []string{
		"BUSINESS CONTEXT:",
		"CURRENT SCHEDULE & AVAILABILITY:",
		"SERVICE INFORMATION:",
		"PRICING INFORMATION:",
		"CONVERSATION MEMORY:",
		"TRAINING GUIDANCE:",
		"CUSTOMER EMAIL: gail@example.com",
		"INSTRUCTIONS:",
	} {
		assert.Contains(t, prompt, want)
	}

	require.Len(t, req.Messages, 1)
	assert.Equal(t, ChatRoleUser, req.Messages[0].Role)
	assert.Contains(t, req.Messages[0].Content, "how much is a window clean quote?")
}

func TestRespond_LowConfidenceSuggestions(t *testing.T) {
	// Short, ungrounded reply: base 0.5 only.
	llm := &fakeLLM{response: LLMResponse{Text: "Sure thing."}}
	svc := newTestService(llm)

	res, err := svc.Respond(context.Background(), Request{Message: "what would a new clean cost? when are you available?"})
	require.NoError(t, err)

	assert.Less(t, res.Confidence, 0.7)
	assert.NotEmpty(t, res.Suggestions)
}

func TestRespond_LLMError(t *testing.T) {
	llm := &fakeLLM{err: errors.New("throttled")}
	svc := newTestService(llm)

	_, err := svc.Respond(context.Background(), Request{Message: "quote for a gutter clean please"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "generation failed"))
}

func TestRespond_EmptyMessage(t *testing.T) {
	llm := &fakeLLM{}
	svc := newTestService(llm)

	_, err := svc.Respond(context.Background(), Request{Message: "   "})
	require.Error(t, err)
	assert.Empty(t, llm.requests)
}

func TestFallbackClient(t *testing.T) {
	primary := &fakeLLM{err: errors.New("down")}
	secondary := &fakeLLM{response: LLMResponse{Text: "from fallback"}}

	client := NewFallbackLLMClient(primary, secondary, nil)
	resp, err := client.Complete(context.Background(), LLMRequest{Model: "m"})
	require.NoError(t, err)
	assert.Equal(t, "from fallback", resp.Text)
	assert.Len(t, primary.requests, 1)
	assert.Len(t, secondary.requests, 1)
}

func TestFallbackClient_NoFallbackConfigured(t *testing.T) {
	primary := &fakeLLM{err: errors.New("down")}

	client := NewFallbackLLMClient(primary, nil, nil)
	_, err := client.Complete(context.Background(), LLMRequest{Model: "m"})
	require.Error(t, err)
}
