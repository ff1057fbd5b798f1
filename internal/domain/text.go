package domain

import (
	"bytes"
	"encoding/json"
)

// TextItem is a single line of free text. The backend stores list items as
// {"text": "..."} objects but older payloads carry bare strings; both decode.
type TextItem string

type textObject struct {
	Text string `json:"text"`
}

// UnmarshalJSON accepts "value" or {"text": "value"}.
func (t *TextItem) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = TextItem(s)
		return nil
	}
	if bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}
	var obj textObject
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	*t = TextItem(obj.Text)
	return nil
}

// MarshalJSON always writes the object form.
func (t TextItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(textObject{Text: string(t)})
}

// Strings flattens items into plain strings.
func Strings(items []TextItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = string(item)
	}
	return out
}
