package training

import "sort"

// Insights aggregates the catalogue for the admin insights endpoint: counts
// by type and quality, the ten most common tags, and the deduplicated
// lesson list.
func (m *Matcher) Insights() Insights {
	messageTypes := make(map[string]int)
	quality := make(map[string]int)
	tagCounts := make(map[string]int)

	var lessons []string
	seenLessons := make(map[string]struct{})

	for _, ex := range m.examples {
		messageTypes[string(ex.Type)]++
		quality[string(ex.Quality)]++
		for _, tag := range ex.Tags {
			tagCounts[tag]++
		}
		for _, lesson := range ex.BusinessLessons {
			if _, ok := seenLessons[lesson]; ok {
				continue
			}
			seenLessons[lesson] = struct{}{}
			lessons = append(lessons, lesson)
		}
	}

	tags := make([]string, 0, len(tagCounts))
	for tag := range tagCounts {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		if tagCounts[tags[i]] != tagCounts[tags[j]] {
			return tagCounts[tags[i]] > tagCounts[tags[j]]
		}
		return tags[i] < tags[j]
	})
	if len(tags) > 10 {
		tags = tags[:10]
	}

	return Insights{
		TotalExamples:       len(m.examples),
		MessageTypes:        messageTypes,
		QualityDistribution: quality,
		CommonTags:          tags,
		BusinessLessons:     lessons,
	}
}
