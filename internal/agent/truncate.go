package agent

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TruncateJSON shrinks a serialized JSON payload to at most limit bytes while
// keeping it parseable. Payloads already within the limit are returned
// untouched, so the function is idempotent. Array payloads are cut at the last
// complete top-level element and re-closed; the worst case is an empty array.
// Object payloads keep their leading members and gain a truncation marker; the
// worst case is a stub reporting the original size.
func TruncateJSON(b []byte, limit int) []byte {
	if limit <= 0 || len(b) <= limit {
		return b
	}

	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 {
		return b
	}

	switch trimmed[0] {
	case '[':
		return truncateArray(trimmed, limit)
	case '{':
		return truncateObject(trimmed, limit)
	default:
		// Scalar or string payloads over the limit carry no droppable
		// elements; replace with an empty string literal.
		return []byte(`""`)
	}
}

// truncateArray cuts the array at element boundaries, walking backward from
// the limit until the re-closed prefix validates.
func truncateArray(b []byte, limit int) []byte {
	// Reserve one byte for the closing bracket.
	cut := limit - 1
	if cut > len(b) {
		cut = len(b)
	}

	for cut > 1 {
		boundary := lastElementBoundary(b[:cut])
		if boundary <= 1 {
			break
		}
		candidate := make([]byte, 0, boundary+1)
		candidate = append(candidate, b[:boundary]...)
		candidate = append(candidate, ']')
		if len(candidate) <= limit && json.Valid(candidate) {
			return candidate
		}
		cut = boundary - 1
	}

	return []byte("[]")
}

// lastElementBoundary returns the index just after the last complete
// top-level element within b (array element or object member), or 0 when none
// is found. The scan is string and nesting aware.
func lastElementBoundary(b []byte) int {
	depth := 0
	inString := false
	escaped := false
	boundary := 0

	for i := 1; i < len(b); i++ {
		c := b[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth < 0 {
				// Closed the top-level array itself.
				return boundary
			}
			if depth == 0 {
				boundary = i + 1
			}
		case ',':
			if depth == 0 {
				boundary = i
			}
		}
	}
	return boundary
}

// truncateObject cuts the object at member boundaries, walking backward from
// the limit until the prefix plus a truncation marker validates. When not even
// the first member fits, the object is replaced by a stub reporting how much
// data was cut.
func truncateObject(b []byte, limit int) []byte {
	const marker = `,"truncated":true}`

	cut := limit - len(marker)
	if cut > len(b) {
		cut = len(b)
	}

	for cut > 1 {
		boundary := lastElementBoundary(b[:cut])
		if boundary <= 1 {
			break
		}
		candidate := make([]byte, 0, boundary+len(marker))
		candidate = append(candidate, b[:boundary]...)
		candidate = append(candidate, marker...)
		if len(candidate) <= limit && json.Valid(candidate) {
			return candidate
		}
		cut = boundary - 1
	}

	stub := fmt.Sprintf(`{"truncated":true,"original_size":%d}`, len(b))
	if len(stub) > limit {
		return []byte(`{"truncated":true}`)
	}
	return []byte(stub)
}
