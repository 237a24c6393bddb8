package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeJSON unmarshals a model response into v. Some backends wrap JSON
// in markdown code fences even when asked not to; known fence markers are
// stripped before parsing. A response that still fails to parse yields
// *ErrInvalidResponse, never a bare error, so callers can treat it
// uniformly as a remote failure.
func DecodeJSON(raw json.RawMessage, v any) error {
	text := StripFences(string(raw))

	if err := json.Unmarshal([]byte(text), v); err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("decode response: %w", err),
		}
	}
	return nil
}

// StripFences removes a surrounding markdown code fence (```json ... ```
// or ``` ... ```) from s, returning the inner text trimmed. Text without
// fences is returned trimmed and otherwise unchanged.
func StripFences(s string) string {
	s = strings.TrimSpace(s)

	if idx := strings.Index(s, "```json"); idx >= 0 {
		s = s[idx+len("```json"):]
	} else if idx := strings.Index(s, "```"); idx >= 0 {
		s = s[idx+len("```"):]
	} else {
		return s
	}

	if end := strings.Index(s, "```"); end >= 0 {
		s = s[:end]
	}
	return strings.TrimSpace(s)
}
