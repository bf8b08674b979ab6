package inference

import "strings"

// RenderTemplate substitutes {{name}} placeholders in template with values
// from parameters.
//
// The scan is a single left-to-right pass: each {{name}} whose name has a
// parameter is replaced with that parameter's value; unresolved placeholders
// are left as literal text. There is no escaping syntax and no recursive
// expansion. Malformed syntax (an unmatched "{{", a name containing
// whitespace or braces) passes through unchanged. Parameters not referenced
// by the template are silently unused.
func RenderTemplate(template string, parameters map[string]string) string {
	if !strings.Contains(template, "{{") {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))

	i := 0
	for i < len(template) {
		open := strings.Index(template[i:], "{{")
		if open < 0 {
			b.WriteString(template[i:])
			break
		}
		open += i
		b.WriteString(template[i:open])

		end := strings.Index(template[open+2:], "}}")
		if end < 0 {
			// Unmatched "{{": the rest is literal.
			b.WriteString(template[open:])
			break
		}
		end += open + 2

		name := template[open+2 : end]
		if !isPlaceholderName(name) {
			// Not a placeholder; emit the braces and rescan so a nested
			// "{{" inside still gets a chance to match.
			b.WriteString("{{")
			i = open + 2
			continue
		}

		if value, ok := parameters[name]; ok {
			b.WriteString(value)
		} else {
			b.WriteString(template[open : end+2])
		}
		i = end + 2
	}

	return b.String()
}

// isPlaceholderName reports whether name is a valid placeholder name:
// non-empty, contiguous non-whitespace, non-brace characters.
func isPlaceholderName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch r {
		case '{', '}', ' ', '\t', '\n', '\r':
			return false
		}
	}
	return true
}
