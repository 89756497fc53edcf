package content

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON pulls the JSON object embedded in free-form model output:
// the substring from the first '{' to the last '}' is parsed as JSON.
// Prose before and after the object is discarded. The strategy is fragile
// on output containing unmatched braces in the surrounding text, but it is
// the contract downstream consumers rely on.
func ExtractJSON(raw string) (Payload, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return nil, ErrParse
	}

	var payload Payload
	if err := json.Unmarshal([]byte(raw[start:end+1]), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if payload == nil {
		payload = Payload{}
	}
	return payload, nil
}
