// Package models defines the data structures shared by the template
// extraction pipeline and the MediaWiki API client.
package models

import (
	"bytes"
	"encoding/json"
)

// Template is one occurrence of a {{Name|key=value|...}} construct.
// Name is the raw template identifier as written (trimmed, not lower-cased).
type Template struct {
	Name string    `json:"name"`
	Data *ParamMap `json:"data"`
}

// ParamMap is an insertion-ordered string map. Writing an existing key
// replaces its value but keeps the key's original position.
type ParamMap struct {
	keys   []string
	values map[string]string
}

func NewParamMap() *ParamMap {
	return &ParamMap{values: make(map[string]string)}
}

// Set stores value under key, last write wins.
func (m *ParamMap) Set(key, value string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m *ParamMap) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Lookup returns the value for key, or "" when absent.
func (m *ParamMap) Lookup(key string) string {
	return m.values[key]
}

func (m *ParamMap) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order.
func (m *ParamMap) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

func (m *ParamMap) Len() int {
	return len(m.keys)
}

// Map returns an unordered copy of the contents.
func (m *ParamMap) Map() map[string]string {
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

// MarshalJSON emits a JSON object preserving insertion order.
func (m *ParamMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts a JSON object. Key order follows Go's decoder,
// which preserves document order for objects decoded token by token.
func (m *ParamMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return &json.UnmarshalTypeError{Value: "non-object", Type: nil}
	}
	m.keys = nil
	m.values = make(map[string]string)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string)
		var value string
		if err := dec.Decode(&value); err != nil {
			return err
		}
		m.Set(key, value)
	}
	_, err = dec.Token() // closing brace
	return err
}

// Coordinates is a decimal-degree pair kept as strings, the natural
// representation of the converted values with no fixed precision.
type Coordinates struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Params returns the pair as a fresh ParamMap, the shape that replaces a
// coord template's raw parameters once resolved.
func (c Coordinates) Params() *ParamMap {
	m := NewParamMap()
	m.Set("lat", c.Lat)
	m.Set("lon", c.Lon)
	return m
}
