package llm

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// cleanModelJSON strips Markdown fences and any prose around the first JSON
// object in raw.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		idx := strings.Index(s, "\n")
		if idx == -1 {
			return s
		}
		s = strings.TrimSpace(s[idx+1:])
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	s = strings.TrimSpace(s)
	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end > start {
			s = s[start : end+1]
		}
	}
	return s
}

// truncate keeps at most limit runes of s.
func truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	count := 0
	for i := range s {
		if count == limit {
			return s[:i]
		}
		count++
	}
	return s
}

// parseAmount accepts a JSON number or a numeric string. Anything else,
// including null, yields nil.
func parseAmount(raw *json.RawMessage) *decimal.Decimal {
	if raw == nil {
		return nil
	}
	text := strings.TrimSpace(string(*raw))
	if text == "" || text == "null" {
		return nil
	}

	var str string
	if err := json.Unmarshal(*raw, &str); err == nil {
		text = strings.ReplaceAll(strings.TrimSpace(str), ",", "")
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return nil
	}
	return &d
}
