package scan

import "strings"

// candidate is a substring of a line that might be a secret value,
// together with its byte offset in the line. Candidates only exist while
// one line is being scanned.
type candidate struct {
	text   string
	offset int
}

// extractCandidates pulls plausible secret values out of a line: quoted
// string literals and unquoted right-hand sides of =/: assignments.
// Overlapping extractions are deduplicated by offset.
func extractCandidates(line string) []candidate {
	var out []candidate
	seen := map[int]string{}
	add := func(off int, text string) {
		if prev, ok := seen[off]; ok && prev == text {
			return
		}
		seen[off] = text
		out = append(out, candidate{text: text, offset: off})
	}
	extractQuoted(line, add)
	extractAssignmentRHS(line, add)
	return out
}

func extractQuoted(line string, add func(int, string)) {
	for _, quote := range []byte{'"', '\'', '`'} {
		i := 0
		for i < len(line) {
			start := strings.IndexByte(line[i:], quote)
			if start == -1 {
				break
			}
			start += i
			end := strings.IndexByte(line[start+1:], quote)
			if end == -1 {
				break
			}
			end += start + 1
			if v := line[start+1 : end]; v != "" {
				add(start+1, v)
			}
			i = end + 1
		}
	}
}

func extractAssignmentRHS(line string, add func(int, string)) {
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '=':
			// Skip comparison operators.
			if i+1 < len(line) && line[i+1] == '=' {
				i++
				continue
			}
			if i > 0 && (line[i-1] == '!' || line[i-1] == '<' || line[i-1] == '>' || line[i-1] == '=') {
				continue
			}
		case ':':
			// Skip :: scope/type separators.
			if i+1 < len(line) && line[i+1] == ':' {
				i++
				continue
			}
			if i > 0 && line[i-1] == ':' {
				continue
			}
		default:
			continue
		}
		j := i + 1
		for j < len(line) && (line[j] == ' ' || line[j] == '\t') {
			j++
		}
		// Quoted values are picked up by extractQuoted.
		if j < len(line) && (line[j] == '"' || line[j] == '\'' || line[j] == '`') {
			i = j
			continue
		}
		k := j
		for k < len(line) && isTokenChar(line[k]) {
			k++
		}
		if k > j {
			add(j, line[j:k])
			i = k
		}
	}
}

// isTokenChar covers characters that commonly appear in secret tokens.
func isTokenChar(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') ||
		c == '+' || c == '/' || c == '=' ||
		c == '-' || c == '_' || c == '.'
}
