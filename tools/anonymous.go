package tools

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CoerceInput converts the loosely typed input of an AnonymousTool call into
// the tool's concrete input schema. Typed values pass through, byte slices
// and strings are decoded as JSON, and a plain string that is not a JSON
// object goes through fromText so a tool can accept raw text input.
func CoerceInput[I any](input any, fromText func(string) *I) (*I, error) {
	switch v := input.(type) {
	case *I:
		return v, nil
	case I:
		return &v, nil
	case json.RawMessage:
		return decodeInput[I](v)
	case []byte:
		return decodeInput[I](v)
	case string:
		if strings.HasPrefix(strings.TrimSpace(v), "{") {
			return decodeInput[I]([]byte(v))
		}
		if fromText != nil {
			return fromText(v), nil
		}
		return decodeInput[I]([]byte(v))
	case map[string]any:
		bs, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode tool input: %w", err)
		}
		return decodeInput[I](bs)
	}
	return nil, fmt.Errorf("unsupported tool input type %T", input)
}

func decodeInput[I any](bs []byte) (*I, error) {
	ret := new(I)
	if err := json.Unmarshal(bs, ret); err != nil {
		return nil, fmt.Errorf("decode tool input: %w", err)
	}
	return ret, nil
}
