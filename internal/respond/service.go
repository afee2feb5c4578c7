package respond

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/swcleaning/ai-responder/internal/business"
	"github.com/swcleaning/ai-responder/internal/knowledge"
	"github.com/swcleaning/ai-responder/internal/memory"
	"github.com/swcleaning/ai-responder/internal/observability/metrics"
	"github.com/swcleaning/ai-responder/internal/training"
	"github.com/swcleaning/ai-responder/pkg/logging"
)

var respondTracer = otel.Tracer("swc/responder")

// Request is one staff-submitted customer message.
type Request struct {
	Message       string `json:"message"`
	Context       string `json:"context,omitempty"`
	Sender        string `json:"sender,omitempty"`
	CustomerEmail string `json:"customerEmail,omitempty"`
}

// Result is the assistant's output for one request. When the recommendation
// vetoes a customer reply, Content carries an internal-analysis payload
// produced without any LLM call.
type Result struct {
	ConversationID  string                `json:"conversationId"`
	Content         string                `json:"content"`
	Confidence      float64               `json:"confidence"`
	Suggestions     []string              `json:"suggestions,omitempty"`
	BusinessContext UsedContext           `json:"businessContext"`
	Recommendation  memory.Recommendation `json:"recommendation"`
	Generated       bool                  `json:"generated"`
	Timestamp       time.Time             `json:"timestamp"`
}

// Service runs the full pipeline: record and classify the message, gate on
// the recommendation, and only then assemble a prompt and call the LLM.
type Service struct {
	store   *memory.Store
	matcher *training.Matcher
	kb      knowledge.Repository
	llm     LLMClient
	metrics *metrics.ResponderMetrics
	log     *logging.Logger

	modelID     string
	maxTokens   int32
	temperature float32
	now         func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithModel sets the model ID and inference parameters.
func WithModel(modelID string, maxTokens int32, temperature float32) Option {
	return func(s *Service) {
		s.modelID = modelID
		s.maxTokens = maxTokens
		s.temperature = temperature
	}
}

// WithMetrics attaches pipeline metrics.
func WithMetrics(m *metrics.ResponderMetrics) Option {
	return func(s *Service) { s.metrics = m }
}

// NewService wires the pipeline. The knowledge repository and LLM client
// may not be nil; metrics are optional.
func NewService(store *memory.Store, matcher *training.Matcher, kb knowledge.Repository, llm LLMClient, log *logging.Logger, opts ...Option) *Service {
	if store == nil {
		panic("respond: store cannot be nil")
	}
	if matcher == nil {
		panic("respond: matcher cannot be nil")
	}
	if kb == nil {
		panic("respond: knowledge repository cannot be nil")
	}
	if llm == nil {
		panic("respond: llm client cannot be nil")
	}
	if log == nil {
		log = logging.Default()
	}

	s := &Service{
		store:       store,
		matcher:     matcher,
		kb:          kb,
		llm:         llm,
		log:         log,
		maxTokens:   1000,
		temperature: 0.7,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Respond records the message and produces either a generated customer
// reply or an internal-analysis payload, depending on the recommendation
// gate.
func (s *Service) Respond(ctx context.Context, req Request) (Result, error) {
	if strings.TrimSpace(req.Message) == "" {
		return Result{}, fmt.Errorf("respond: message is required")
	}

	ctx, span := respondTracer.Start(ctx, "respond.generate")
	defer span.End()

	convID := s.store.AddMessage(req.Message, req.Context, req.Sender)
	rec := s.store.Recommend(convID)
	s.metrics.ObserveResponse(string(rec.ResponseType), rec.ShouldRespond)
	span.SetAttributes(
		attribute.String("conversation.id", convID),
		attribute.String("recommendation.response_type", string(rec.ResponseType)),
		attribute.Bool("recommendation.should_respond", rec.ShouldRespond),
	)

	suggestion := s.matcher.Suggest(req.Message, req.Context)

	if !rec.ShouldRespond {
		s.log.Info("response vetoed",
			"conversation_id", convID,
			"response_type", rec.ResponseType,
			"reason", rec.Reason,
		)
		return Result{
			ConversationID: convID,
			Content:        suggestion.SuggestedResponse,
			Confidence:     suggestion.Confidence,
			Recommendation: rec,
			Generated:      false,
			Timestamp:      s.now(),
		}, nil
	}

	bizCtx := business.GetContext()
	schedule := business.Schedule(s.now())
	systemPrompt, err := s.buildSystemPrompt(ctx, req, bizCtx, schedule, convID, suggestion)
	if err != nil {
		return Result{}, err
	}

	start := s.now()
	resp, err := s.llm.Complete(ctx, LLMRequest{
		Model:       s.modelID,
		System:      []string{systemPrompt},
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
		Messages: []ChatMessage{
			{Role: ChatRoleUser, Content: fmt.Sprintf("Please generate a response to this customer message:\n\n%q", req.Message)},
		},
	})
	elapsed := s.now().Sub(start).Seconds()
	if err != nil {
		s.metrics.ObserveLLMRequest("error", elapsed)
		return Result{}, fmt.Errorf("respond: generation failed: %w", err)
	}
	s.metrics.ObserveLLMRequest("ok", elapsed)

	confidence := Confidence(resp.Text, bizCtx)
	var suggestions []string
	if confidence < 0.7 {
		suggestions = Suggestions(req.Message)
	}

	s.log.Info("response generated",
		"conversation_id", convID,
		"confidence", confidence,
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens,
	)

	return Result{
		ConversationID:  convID,
		Content:         resp.Text,
		Confidence:      confidence,
		Suggestions:     suggestions,
		BusinessContext: ExtractUsedContext(resp.Text, bizCtx, schedule),
		Recommendation:  rec,
		Generated:       true,
		Timestamp:       s.now(),
	}, nil
}

// buildSystemPrompt assembles the business profile, live schedule, relevant
// knowledge, conversation memory, and the training suggestion into one
// system prompt.
func (s *Service) buildSystemPrompt(ctx context.Context, req Request, bizCtx business.Context, schedule []business.ScheduleDay, convID string, suggestion training.Suggestion) (string, error) {
	bizJSON, err := json.MarshalIndent(bizCtx, "", "  ")
	if err != nil {
		return "", fmt.Errorf("respond: marshal business context: %w", err)
	}
	scheduleJSON, err := json.MarshalIndent(schedule, "", "  ")
	if err != nil {
		return "", fmt.Errorf("respond: marshal schedule: %w", err)
	}

	kb, err := s.kb.All(ctx)
	if err != nil {
		// All already degrades internally; a hard error here still should
		// not abort generation.
		s.log.Warn("knowledge load failed, continuing without", "error", err)
		kb = knowledge.Fallback()
	}

	var b strings.Builder
	b.WriteString("You are a customer service assistant for Somerset Window Cleaning, a professional window cleaning service in Somerset, UK.\n")

	b.WriteString("\nBUSINESS CONTEXT:\n")
	b.Write(bizJSON)
	b.WriteString("\n\nCURRENT SCHEDULE & AVAILABILITY:\n")
	b.Write(scheduleJSON)
	b.WriteString("\n")

	b.WriteString(knowledge.Relevant(req.Message, kb))
	b.WriteString(s.store.PromptContext(convID))

	if suggestion.Confidence > 0.5 {
		b.WriteString("\nTRAINING GUIDANCE:\n")
		b.WriteString(fmt.Sprintf("- Suggested approach (confidence %.2f): %s\n", suggestion.Confidence, suggestion.SuggestedResponse))
		for _, lesson := range suggestion.BusinessLessons {
			b.WriteString("- " + lesson + "\n")
		}
	}

	b.WriteString(`
INSTRUCTIONS:
1. Generate a professional, friendly response to the customer's inquiry
2. Use the provided business context to give accurate information about services, areas, and availability
3. If the customer asks about pricing, refer them to contact for a quote rather than giving specific prices
4. If they ask about scheduling, reference current availability from the schedule data
5. Always maintain Somerset Window Cleaning's professional, reliable, and friendly tone
6. If you need more information to provide a complete answer, ask relevant follow-up questions
7. End responses with appropriate next steps or contact information
`)

	if req.CustomerEmail != "" {
		b.WriteString("\nCUSTOMER EMAIL: " + req.CustomerEmail + "\n")
	}
	b.WriteString("TIMESTAMP: " + s.now().Format(time.RFC3339) + "\n")

	return b.String(), nil
}
