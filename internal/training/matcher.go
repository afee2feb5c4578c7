package training

import (
	"fmt"
	"regexp"
	"strings"
)

// Pattern is one static trigger→template rule. Patterns are registered in a
// fixed order; on equal confidence the earlier pattern wins.
type Pattern struct {
	Trigger *regexp.Regexp
	// TriggerText is the bare alternation the trigger was compiled from;
	// it is what suggestion reasoning quotes back to staff.
	TriggerText string
	Template    string
	Context     string
	Confidence  float64
}

func newPattern(trigger, template, context string, confidence float64) Pattern {
	return Pattern{
		Trigger:     regexp.MustCompile(`(?i)` + trigger),
		TriggerText: trigger,
		Template:    template,
		Context:     context,
		Confidence:  confidence,
	}
}

// similarityThreshold is the word-overlap score above which a training
// example counts as similar to the input.
const similarityThreshold = 0.3

// Matcher holds the static pattern table and example catalogue. Construct
// one at startup and share it; it is immutable after construction and safe
// for concurrent use.
type Matcher struct {
	patterns []Pattern
	examples []Example
}

// NewMatcher loads the built-in Somerset pattern table and example
// catalogue.
func NewMatcher() *Matcher {
	return &Matcher{
		patterns: []Pattern{
			newPattern(
				`star review|5 star|review|praise|excellent|brilliant|good job`,
				"Thank you so much for your {rating} review{customer_name}! We really appreciate your kind words and continued support. {service_continuation} Many thanks from all the team at Somerset Window Cleaning!",
				"customer_praise",
				0.9,
			),
			newPattern(
				`SMSReply from|SMS sent by|delivery details|Mar \d+|Jan \d+|conversation history`,
				"INTERNAL ANALYSIS: This appears to be {message_type}. {analysis_summary} This is business data for internal review, not a customer inquiry requiring a response.",
				"internal_data_analysis",
				0.95,
			),
			newPattern(
				`quote|price|cost|new|first time|how much`,
				"Hello! Thank you for your enquiry about {service_type}. {area_confirmation} For an accurate quote, we'd need to assess your property. Please email us at info@somersetwindowcleaning.co.uk or call 07123 456789 to arrange a free, no-obligation quote.",
				"new_customer_inquiry",
				0.8,
			),
			newPattern(
				`missed|problem|issue|complaint|unhappy|dirty|not done`,
				"I sincerely apologise for {specific_issue}. We'll arrange to return within the next two working days to resolve this at no additional charge. This is covered under our 48-hour service guarantee.",
				"complaint_response",
				0.85,
			),
			newPattern(
				`when|schedule|next|day|time|appointment`,
				"Thanks for getting in touch{customer_name}. I'll check our schedule and confirm your {service_timing}. We'll send you a text message confirmation once verified.",
				"scheduling_inquiry",
				0.75,
			),
		},
		examples: builtinExamples(),
	}
}

// Suggest returns the best pattern-based response suggestion for a message.
// When no trigger matches it returns a low-confidence generic fallback; it
// never fails.
func (m *Matcher) Suggest(message, context string) Suggestion {
	var best *Pattern
	for i := range m.patterns {
		p := &m.patterns[i]
		if !p.Trigger.MatchString(message) {
			continue
		}
		if best == nil || p.Confidence > best.Confidence {
			best = p
		}
	}

	if best == nil {
		return Suggestion{
			SuggestedResponse: "No specific pattern matched. Use general customer service approach.",
			Confidence:        0.3,
			Reasoning:         "No training data pattern found for this message type",
			BusinessLessons:   []string{"Consider adding this scenario to training data"},
			MessageType:       "unknown",
		}
	}

	similar := m.similarExamples(message)

	var lessons []string
	seen := make(map[string]struct{})
	for _, ex := range similar {
		for _, lesson := range ex.BusinessLessons {
			if _, ok := seen[lesson]; ok {
				continue
			}
			seen[lesson] = struct{}{}
			lessons = append(lessons, lesson)
		}
	}

	messageType := "unknown"
	if len(similar) > 0 {
		messageType = string(similar[0].Type)
	}

	return Suggestion{
		SuggestedResponse: renderTemplate(best, message),
		Confidence:        best.Confidence,
		Reasoning:         fmt.Sprintf("Matched pattern: %s. Found %d similar training examples.", best.TriggerText, len(similar)),
		BusinessLessons:   lessons,
		MessageType:       messageType,
	}
}

func (m *Matcher) similarExamples(message string) []Example {
	var similar []Example
	for _, ex := range m.examples {
		if Similarity(message, ex.CustomerMessage) > similarityThreshold {
			similar = append(similar, ex)
		}
	}
	return similar
}

// Examples returns the loaded catalogue.
func (m *Matcher) Examples() []Example {
	return m.examples
}

var (
	templateNameRE    = regexp.MustCompile(`from ([A-Za-z]+ [A-Za-z]+)`)
	templateHiRE      = regexp.MustCompile(`Hi ([A-Za-z]+)`)
	templateServiceRE = regexp.MustCompile(`(?i)(window clean|gutter|pressure wash|conservatory)`)
	templateRatingRE  = regexp.MustCompile(`(?i)(\d+)\s*star`)
	templateIssueRE   = regexp.MustCompile(`(?i)(missed|dirty|not done|problem with) ([^.]+)`)
)

var templateMentionAreas = []string{"Bath", "Bristol", "Weston-super-Mare", "Keynsham", "BS23", "BS22"}

// renderTemplate substitutes every named placeholder with a value extracted
// from the message, or a fixed default. Placeholders never survive into the
// output.
func renderTemplate(p *Pattern, message string) string {
	response := p.Template

	customerName := ""
	if m := templateNameRE.FindStringSubmatch(message); m != nil {
		customerName = ", " + m[1]
	} else if m := templateHiRE.FindStringSubmatch(message); m != nil {
		customerName = ", " + m[1]
	}
	response = strings.ReplaceAll(response, "{customer_name}", customerName)

	serviceType := "window cleaning services"
	if m := templateServiceRE.FindStringSubmatch(message); m != nil {
		serviceType = m[1]
	}
	response = strings.ReplaceAll(response, "{service_type}", serviceType)

	rating := "excellent"
	if m := templateRatingRE.FindStringSubmatch(message); m != nil {
		rating = m[1] + "-star"
	}
	response = strings.ReplaceAll(response, "{rating}", rating)

	areaConfirmation := ""
	lower := strings.ToLower(message)
	for _, area := range templateMentionAreas {
		if strings.Contains(lower, strings.ToLower(area)) {
			areaConfirmation = "We serve " + area + " and surrounding areas."
			break
		}
	}
	response = strings.ReplaceAll(response, "{area_confirmation}", areaConfirmation)

	response = strings.ReplaceAll(response, "{service_timing}", "cleaning appointment")
	response = strings.ReplaceAll(response, "{service_continuation}", "We look forward to continuing to provide excellent service.")

	if p.Context == "internal_data_analysis" {
		response = strings.ReplaceAll(response, "{message_type}", "SMS conversation history or business data")
		response = strings.ReplaceAll(response, "{analysis_summary}", "The message contains business communication records.")
	}

	specificIssue := "the service issue"
	if m := templateIssueRE.FindString(message); m != "" {
		specificIssue = m
	}
	response = strings.ReplaceAll(response, "{specific_issue}", specificIssue)

	return response
}
