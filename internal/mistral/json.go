package mistral

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	jsonBlockRe    = regexp.MustCompile("(?is)```(?:json)?(.*?)```")
	escapedNLRe    = regexp.MustCompile(`\\n`)
	trailingComma1 = regexp.MustCompile(`,\s*\]`)
	trailingComma2 = regexp.MustCompile(`,\s*\}`)
)

// RecoverJSON parses possibly messy model output into a JSON object. It tries,
// in order: the raw text, a fenced code block, the first-open-brace to
// last-close-brace span, and finally a lightly repaired copy of the text.
// Unparsable input is an error, never a silent empty object.
func RecoverJSON(text string) (map[string]any, error) {
	if text == "" {
		return nil, fmt.Errorf("empty content")
	}

	var out map[string]any
	if err := json.Unmarshal([]byte(text), &out); err == nil {
		return out, nil
	}

	if m := jsonBlockRe.FindStringSubmatch(text); m != nil {
		inner := strings.TrimSpace(m[1])
		if err := json.Unmarshal([]byte(inner), &out); err == nil {
			return out, nil
		}
	}

	if start, end := strings.Index(text, "{"), strings.LastIndex(text, "}"); start >= 0 && end > start {
		frag := text[start : end+1]
		if err := json.Unmarshal([]byte(frag), &out); err == nil {
			return out, nil
		}
	}

	// Last resort: strip stray backticks, collapse escaped newlines, drop
	// trailing commas before closing brackets.
	cleaned := strings.TrimSpace(text)
	cleaned = strings.Trim(cleaned, "`")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = escapedNLRe.ReplaceAllString(cleaned, " ")
	cleaned = trailingComma1.ReplaceAllString(cleaned, "]")
	cleaned = trailingComma2.ReplaceAllString(cleaned, "}")
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return nil, fmt.Errorf("no JSON object recovered: %w", err)
	}
	return out, nil
}

// helpers for reading loosely typed decoded JSON

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asList(v any) []any {
	l, _ := v.([]any)
	return l
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}

func stringOr(m map[string]any, key, def string) string {
	if s := asString(m[key]); s != "" {
		return s
	}
	return def
}
