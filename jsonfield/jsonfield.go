// Package jsonfield decodes JSON objects one field at a time. A field holding
// a value of the wrong type reads as its zero value instead of failing the
// whole document, which is what content coming from editors needs.
package jsonfield

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Date layouts accepted by Time, most precise first.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Object holds the raw fields of a JSON object.
type Object map[string]json.RawMessage

// Parse returns the fields of data. It reports false when data is not a JSON
// object.
func Parse(data []byte) (Object, bool) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}
	var o Object
	if err := json.Unmarshal(trimmed, &o); err != nil {
		return nil, false
	}
	return o, true
}

// Kinds of scalar values.
const (
	kindNone = iota
	kindString
	kindNumber
	kindBool
)

// String returns the field as text. Numbers are kept as written; any other
// non-string value reads as "".
func (o Object) String(key string) string {
	s, kind := scalar(o[key])
	if kind != kindString && kind != kindNumber {
		return ""
	}
	return s
}

// Bool returns the field as a boolean. JSON booleans are accepted as well as
// the strings and numbers strconv.ParseBool understands ("true", "1", ...).
func (o Object) Bool(key string) bool {
	s, kind := scalar(o[key])
	if kind == kindNone {
		return false
	}
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && b
}

// Time returns the field parsed as an RFC 3339 timestamp or a plain date.
// Anything else, including an absent field, yields nil.
func (o Object) Time(key string) *time.Time {
	s, kind := scalar(o[key])
	if kind != kindString {
		return nil
	}
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// Strings returns the text elements of an array field. Numbers are kept as
// written and other elements are dropped.
func (o Object) Strings(key string) []string {
	var elems []json.RawMessage
	if err := json.Unmarshal(o[key], &elems); err != nil {
		return nil
	}
	var out []string
	for _, e := range elems {
		if s, kind := scalar(e); kind == kindString || kind == kindNumber {
			out = append(out, s)
		}
	}
	return out
}

// Decode unmarshals the field into a T. It returns the zero T when the field
// is absent or does not match.
func Decode[T any](o Object, key string) T {
	var v T
	raw, ok := o[key]
	if !ok {
		return v
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		var zero T
		return zero
	}
	return v
}

func scalar(raw json.RawMessage) (string, int) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", kindNone
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", kindNone
		}
		return s, kindString
	case 't', 'f':
		return string(raw), kindBool
	case '{', '[', 'n':
		return "", kindNone
	default:
		return string(raw), kindNumber
	}
}
