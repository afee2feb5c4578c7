package knowledge

import (
	"strings"
)

// selectionRule maps message keywords to a knowledge category and the
// heading it carries in the prompt.
type selectionRule struct {
	Category string
	Heading  string
	Keywords []string
}

var selectionRules = []selectionRule{
	{"services", "SERVICE INFORMATION", []string{"window", "clean", "service", "quote"}},
	{"pricing", "PRICING INFORMATION", []string{"price", "cost", "quote", "charge"}},
	{"scheduling", "SCHEDULING INFORMATION", []string{"when", "available", "book", "appointment"}},
	{"areas", "SERVICE AREA INFORMATION", []string{"bath", "bristol", "keynsham", "saltford", "paulton", "midsomer norton", "radstock"}},
	{"policies", "POLICY INFORMATION", []string{"cancel", "refund", "weather", "payment"}},
}

// Relevant selects the knowledge sections that apply to a customer message.
// Customer-service guidelines and general business information are always
// included when present.
func Relevant(message string, kb map[string]string) string {
	if len(kb) == 0 {
		kb = Fallback()
	}

	lower := strings.ToLower(message)
	var b strings.Builder

	for _, rule := range selectionRules {
		content, ok := kb[rule.Category]
		if !ok {
			continue
		}
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				b.WriteString("\n" + rule.Heading + ":\n" + content + "\n")
				break
			}
		}
	}

	if content, ok := kb["customer-service"]; ok {
		b.WriteString("\nCUSTOMER SERVICE GUIDELINES:\n" + content + "\n")
	}
	if content, ok := kb["general"]; ok {
		b.WriteString("\nGENERAL BUSINESS INFORMATION:\n" + content + "\n")
	}

	return b.String()
}

// AllForPrompt renders the complete knowledge base as one prompt block in a
// fixed category order.
func AllForPrompt(kb map[string]string) string {
	if len(kb) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n=== COMPREHENSIVE BUSINESS KNOWLEDGE ===\n")
	for _, category := range promptCategoryOrder {
		content, ok := kb[category]
		if !ok {
			continue
		}
		heading := strings.ToUpper(strings.ReplaceAll(category, "-", " "))
		b.WriteString("\n--- " + heading + " ---\n" + content + "\n")
	}
	b.WriteString("\n=== END KNOWLEDGE BASE ===\n")
	return b.String()
}
