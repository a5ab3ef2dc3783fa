package state

import (
	"strconv"
	"strings"

	"multiselect/internal/domain"
)

// NormalizeOptions builds the default option list. Full records win over
// plain labels when both are given; plain labels get ids "1".."n" by
// position and are trimmed. Labels are deduplicated case-insensitively:
// the last duplicate wins but keeps the position of the first.
func NormalizeOptions(labels []string, records []domain.Option) []domain.Option {
	var processed []domain.Option
	if len(records) > 0 {
		processed = records
	} else {
		processed = make([]domain.Option, 0, len(labels))
		for i, label := range labels {
			processed = append(processed, domain.Option{
				ID:    strconv.Itoa(i + 1),
				Label: strings.TrimSpace(label),
			})
		}
	}
	if len(processed) == 0 {
		return []domain.Option{}
	}

	index := make(map[string]int, len(processed))
	unique := make([]domain.Option, 0, len(processed))
	for _, opt := range processed {
		key := strings.ToLower(opt.Label)
		if i, seen := index[key]; seen {
			unique[i] = opt
			continue
		}
		index[key] = len(unique)
		unique = append(unique, opt)
	}
	return unique
}
