package memory

import (
	"regexp"
	"strings"

	"github.com/swcleaning/ai-responder/internal/business"
)

// Name patterns are tried in order and the first capture wins. The greeting
// form captures a single token, the attribution form two capitalized tokens.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`Hi ([A-Za-z]+)`),
	regexp.MustCompile(`from ([A-Za-z]+ [A-Za-z]+)`),
}

// Phone patterns: any bare 11-digit run, or a UK mobile starting 07.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{11}\b`),
	regexp.MustCompile(`07\d{9}`),
}

// ExtractEntities pulls a customer name, phone number, and mentioned service
// areas out of free text. Every field is optional; extracting nothing is a
// normal outcome.
func ExtractEntities(content, context string) Entities {
	var e Entities

	for _, re := range namePatterns {
		if m := re.FindStringSubmatch(content); m != nil {
			e.Name = m[1]
			break
		}
	}

	for _, re := range phonePatterns {
		if m := re.FindString(content); m != "" {
			e.Phone = m
			break
		}
	}

	lc := strings.ToLower(content)
	lx := strings.ToLower(context)
	for _, area := range business.MentionAreas() {
		la := strings.ToLower(area)
		if strings.Contains(lc, la) || strings.Contains(lx, la) {
			e.Areas = append(e.Areas, area)
		}
	}

	return e
}
