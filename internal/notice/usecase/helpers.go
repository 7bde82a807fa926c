package usecase

import (
	"encoding/json"
	"regexp"
	"strings"

	"notice-calendar/internal/model"
)

var codeFenceRe = regexp.MustCompile("```(?:json)?")

// normalizeModelResponse cleans an LLM answer into a parseable JSON object
// string: code-fence markers are stripped, whitespace trimmed, and the result
// sliced to the span between the first '{' and the last '}'. When a boundary
// is missing the slice extends to that edge of the string instead. This is
// best-effort cleanup, not validation; undecodable output is caught by the
// JSON parser downstream. Applying it to its own output is a no-op.
func normalizeModelResponse(raw string) string {
	s := codeFenceRe.ReplaceAllString(raw, "")
	s = strings.TrimSpace(s)

	start := strings.Index(s, "{")
	if start == -1 {
		start = 0
	}
	end := strings.LastIndex(s, "}")
	if end == -1 {
		end = len(s)
	} else {
		end++
	}
	if start > end {
		return s
	}
	return s[start:end]
}

// parseEventRecord decodes the normalized string into an event record and
// normalizes the reminder tag. Decode failure is terminal for the run.
func parseEventRecord(cleaned string) (model.EventRecord, error) {
	var record model.EventRecord
	if err := json.Unmarshal([]byte(cleaned), &record); err != nil {
		return model.EventRecord{}, err
	}
	record.ReminderTag = record.ReminderTag.Normalize()
	return record, nil
}
