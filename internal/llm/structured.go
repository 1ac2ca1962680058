package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaValidator checks a decoded value; a non-nil error rejects the output.
type SchemaValidator[T any] func(T) error

// ExtractJSON decodes the first JSON object in raw model output into T.
// Code fences, surrounding prose, comments and ".5"-style numbers are tolerated.
func ExtractJSON[T any](raw string, validator SchemaValidator[T]) (T, error) {
	return extract(raw, '{', '}', validator)
}

// ExtractJSONArray decodes the first JSON array in raw model output.
func ExtractJSONArray[T any](raw string, validator SchemaValidator[[]T]) ([]T, error) {
	return extract(raw, '[', ']', validator)
}

func extract[T any](raw string, open, close byte, validator SchemaValidator[T]) (T, error) {
	var zero T

	block := balancedBlock(stripCodeFences(raw), open, close)
	if block == "" {
		return zero, fmt.Errorf("%w: no JSON %s found in response", ErrInvalidOutput, blockName(open))
	}

	var out T
	if err := json.Unmarshal([]byte(sanitize(block)), &out); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if validator != nil {
		if err := validator(out); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}
	return out, nil
}

func blockName(open byte) string {
	if open == '[' {
		return "array"
	}
	return "object"
}

// stripCodeFences drops ``` fence lines and keeps everything else.
func stripCodeFences(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// balancedBlock returns the first open..close span whose brackets balance,
// ignoring brackets inside string literals.
func balancedBlock(s string, open, close byte) string {
	start := strings.IndexByte(s, open)
	if start < 0 {
		return ""
	}
	var sc stringScanner
	depth := 0
	for i := start; i < len(s); i++ {
		if sc.step(s[i]) {
			continue
		}
		switch s[i] {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// sanitize removes // and /* */ comments and rewrites ".5" / "-.5" as
// "0.5" / "-0.5", leaving string contents untouched.
func sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)

	var sc stringScanner
	var last byte // last non-space byte written outside strings
	for i := 0; i < len(s); i++ {
		c := s[i]
		if sc.step(c) {
			b.WriteByte(c)
			continue
		}

		if c == '/' && i+1 < len(s) && s[i+1] == '/' {
			for i+1 < len(s) && s[i+1] != '\n' {
				i++
			}
			continue
		}
		if c == '/' && i+1 < len(s) && s[i+1] == '*' {
			end := strings.Index(s[i+2:], "*/")
			if end < 0 {
				break
			}
			i += end + 3
			continue
		}

		if c == '.' && i+1 < len(s) && isDigit(s[i+1]) && startsNumber(last) {
			b.WriteByte('0')
		}
		b.WriteByte(c)
		if !isSpace(c) {
			last = c
		}
	}
	return b.String()
}

// stringScanner tracks whether the current byte is inside a JSON string.
type stringScanner struct {
	inString bool
	escaped  bool
}

// step consumes c and reports whether it belongs to a string literal
// (including its quotes).
func (sc *stringScanner) step(c byte) bool {
	switch {
	case sc.escaped:
		sc.escaped = false
		return true
	case sc.inString && c == '\\':
		sc.escaped = true
		return true
	case c == '"':
		sc.inString = !sc.inString
		return true
	default:
		return sc.inString
	}
}

func startsNumber(prev byte) bool {
	switch prev {
	case 0, ':', ',', '[', '{', '-':
		return true
	}
	return false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSpace(c byte) bool { return c == ' ' || c == '\n' || c == '\r' || c == '\t' }
