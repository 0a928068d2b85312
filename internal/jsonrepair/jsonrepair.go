// Package jsonrepair recovers a JSON object from free-form model output.
//
// Extract drops prose and code fences around the outermost {...} span.
// Repair then applies a fixed sequence of passes: quoting single-quoted
// keys, quoting bare keys, requoting single-quoted values and dropping
// trailing commas. Every pass scans the text and leaves double-quoted
// strings untouched. Truncated output (unterminated strings, unclosed
// brackets) is not recovered.
package jsonrepair

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrNoObject is returned when the text contains no {...} span.
var ErrNoObject = errors.New("no JSON object found")

// Pass is one named repair step.
type Pass struct {
	Name  string
	Apply func(string) string
}

// Passes lists the repairs in the order Repair applies them.
var Passes = []Pass{
	{Name: "quote-single-quoted-keys", Apply: QuoteSingleQuotedKeys},
	{Name: "quote-bare-keys", Apply: QuoteBareKeys},
	{Name: "requote-single-quoted-values", Apply: RequoteSingleQuotedValues},
	{Name: "strip-trailing-commas", Apply: StripTrailingCommas},
}

var objectSpan = regexp.MustCompile(`(?s)\{.*\}`)

type fix uint8

const (
	fixSingleQuotedKeys fix = 1 << iota
	fixBareKeys
	fixSingleQuotedValues
	fixTrailingCommas
)

// Extract returns the widest {...} span of text: from the first '{' to the
// last '}'.
func Extract(text string) (string, error) {
	span := objectSpan.FindString(text)
	if span == "" {
		return "", ErrNoObject
	}
	return span, nil
}

// QuoteSingleQuotedKeys rewrites {'key': ...} as {"key": ...}.
func QuoteSingleQuotedKeys(s string) string {
	return rewrite(s, fixSingleQuotedKeys)
}

// QuoteBareKeys rewrites {key: ...} as {"key": ...}.
func QuoteBareKeys(s string) string {
	return rewrite(s, fixBareKeys)
}

// RequoteSingleQuotedValues rewrites single-quoted string values and array
// elements as double-quoted JSON strings, escaping embedded double quotes.
func RequoteSingleQuotedValues(s string) string {
	return rewrite(s, fixSingleQuotedValues)
}

// StripTrailingCommas removes commas, and the whitespace after them,
// directly before } or ].
func StripTrailingCommas(s string) string {
	return rewrite(s, fixTrailingCommas)
}

// rewrite walks s once, copying double-quoted strings verbatim and applying
// the enabled fixes to everything outside them.
func rewrite(s string, fixes fix) string {
	var b strings.Builder
	b.Grow(len(s) + 16)

	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == '"':
			end, _ := stringEnd(s, i)
			b.WriteString(s[i:end])
			i = end

		case c == '\'':
			end, closed := stringEnd(s, i)
			if !closed {
				b.WriteString(s[i:])
				return b.String()
			}
			isKey := nextByte(s, end) == ':'
			if (isKey && fixes&fixSingleQuotedKeys != 0) || (!isKey && fixes&fixSingleQuotedValues != 0) {
				b.WriteString(requote(s[i+1 : end-1]))
			} else {
				b.WriteString(s[i:end])
			}
			i = end

		case isIdentStart(c):
			end := i + 1
			for end < len(s) && isIdentPart(s[end]) {
				end++
			}
			if fixes&fixBareKeys != 0 && nextByte(s, end) == ':' {
				b.WriteString(`"` + s[i:end] + `"`)
			} else {
				b.WriteString(s[i:end])
			}
			i = end

		case c == ',' && fixes&fixTrailingCommas != 0:
			next := skipSpace(s, i+1)
			if next < len(s) && (s[next] == '}' || s[next] == ']') {
				i = next
				continue
			}
			b.WriteByte(c)
			i++

		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

// stringEnd returns the index just past the string starting at s[start],
// delimited by s[start]. closed is false when the input ends first.
func stringEnd(s string, start int) (end int, closed bool) {
	quote := s[start]
	for i := start + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case quote:
			return i + 1, true
		}
	}
	return len(s), false
}

func requote(body string) string {
	body = strings.ReplaceAll(body, `\'`, `'`)
	body = strings.ReplaceAll(body, `"`, `\"`)
	return `"` + body + `"`
}

func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	return i
}

// nextByte returns the first non-space byte at or after i, or 0.
func nextByte(s string, i int) byte {
	if i = skipSpace(s, i); i < len(s) {
		return s[i]
	}
	return 0
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c|0x20 >= 'a' && c|0x20 <= 'z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// Repair applies every pass in order.
func Repair(s string) string {
	for _, p := range Passes {
		s = p.Apply(s)
	}
	return s
}

// Normalize extracts the JSON object from text and returns it as valid
// JSON. Passes are applied one at a time until the text parses.
func Normalize(text string) (json.RawMessage, error) {
	span, err := Extract(text)
	if err != nil {
		return nil, err
	}
	if json.Valid([]byte(span)) {
		return json.RawMessage(span), nil
	}

	repaired := span
	for _, p := range Passes {
		repaired = p.Apply(repaired)
		if json.Valid([]byte(repaired)) {
			return json.RawMessage(repaired), nil
		}
	}

	var v any
	if err := json.Unmarshal([]byte(repaired), &v); err != nil {
		return nil, fmt.Errorf("repair failed: %w", err)
	}
	return json.RawMessage(repaired), nil
}

// Decode normalizes text and unmarshals the result into v.
func Decode(text string, v any) error {
	raw, err := Normalize(text)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}
