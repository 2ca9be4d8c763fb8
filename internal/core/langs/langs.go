// Package langs holds the ordered language breakdown of a repository
package langs

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Weight is one language and its byte count
type Weight struct {
	Name  string `json:"name"`
	Bytes int64  `json:"bytes"`
}

// Languages keeps the order in which the API listed the languages.
// It encodes as a JSON object so cached records look like the upstream payload.
type Languages []Weight

// MostUsed returns the heaviest language, the first one on ties
func (l Languages) MostUsed() (Weight, bool) {
	if len(l) == 0 {
		return Weight{}, false
	}
	best := l[0]
	for _, w := range l[1:] {
		if w.Bytes > best.Bytes {
			best = w
		}
	}
	return best, true
}

// Names returns the language names in order
func (l Languages) Names() []string {
	out := make([]string, len(l))
	for i, w := range l {
		out[i] = w.Name
	}
	return out
}

// MarshalJSON writes {"Go":123,"HTML":4} preserving order
func (l Languages) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, w := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(w.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", w.Bytes)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object token by token so key order survives
func (l *Languages) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*l = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("languages: expected object, got %v", tok)
	}

	out := Languages{}
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := kt.(string)
		if !ok {
			return fmt.Errorf("languages: expected key, got %v", kt)
		}
		vt, err := dec.Token()
		if err != nil {
			return err
		}
		num, ok := vt.(json.Number)
		if !ok {
			return fmt.Errorf("languages: %q expected a number, got %v", name, vt)
		}
		n, err := num.Int64()
		if err != nil {
			return fmt.Errorf("languages: %q: %w", name, err)
		}
		out = append(out, Weight{Name: name, Bytes: n})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*l = out
	return nil
}
