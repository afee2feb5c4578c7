package respond

import (
	"strings"

	"github.com/swcleaning/ai-responder/internal/business"
)

// UsedContext reports which business facts the generated reply leaned on.
type UsedContext struct {
	ServiceAreas      []string `json:"serviceAreas,omitempty"`
	SuggestedServices []string `json:"suggestedServices,omitempty"`
	AvailableDates    []string `json:"availableDates,omitempty"`
}

// Confidence scores how well the generated reply is grounded in business
// facts. Base 0.5, plus 0.2 for naming a real service, 0.2 for naming a
// serviced area, 0.1 for a reasonable length, and 0.1 for including contact
// details, capped at 1.0.
func Confidence(response string, ctx business.Context) float64 {
	confidence := 0.5
	lower := strings.ToLower(response)

	for _, svc := range ctx.Services {
		if strings.Contains(lower, strings.ToLower(svc.Name)) {
			confidence += 0.2
			break
		}
	}

	for _, area := range ctx.ServiceAreas {
		if strings.Contains(lower, strings.ToLower(area)) {
			confidence += 0.2
			break
		}
	}

	if len(response) > 100 && len(response) < 1000 {
		confidence += 0.1
	}

	if strings.Contains(response, ctx.ContactInfo.Email) || strings.Contains(response, ctx.ContactInfo.Phone) {
		confidence += 0.1
	}

	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}

// Suggestions offers the operator followups when confidence is low.
func Suggestions(message string) []string {
	lower := strings.ToLower(message)
	var suggestions []string

	if strings.Contains(lower, "price") || strings.Contains(lower, "cost") {
		suggestions = append(suggestions, "Consider providing more specific service details for accurate pricing")
	}
	if strings.Contains(lower, "when") || strings.Contains(lower, "availability") {
		suggestions = append(suggestions, "Check current schedule data for more specific availability")
	}
	if !strings.Contains(lower, "window") {
		suggestions = append(suggestions, "Clarify which Somerset Window Cleaning services they need")
	}

	return suggestions
}

// ExtractUsedContext pulls the areas, services, and dates the reply actually
// mentioned out of the generated text.
func ExtractUsedContext(response string, ctx business.Context, schedule []business.ScheduleDay) UsedContext {
	var used UsedContext
	lower := strings.ToLower(response)

	for _, area := range ctx.ServiceAreas {
		if strings.Contains(lower, strings.ToLower(area)) {
			used.ServiceAreas = append(used.ServiceAreas, area)
		}
	}

	for _, svc := range ctx.Services {
		if strings.Contains(lower, strings.ToLower(svc.Name)) {
			used.SuggestedServices = append(used.SuggestedServices, svc.Name)
		}
	}

	if strings.Contains(lower, "available") {
		for _, day := range schedule {
			if day.Availability != business.SlotAvailable {
				continue
			}
			used.AvailableDates = append(used.AvailableDates, day.Date)
			if len(used.AvailableDates) == 3 {
				break
			}
		}
	}

	return used
}
