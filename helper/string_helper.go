package helper

import "unicode"

// Underscore converts a CamelCase struct field name to snake_case for
// validation error keys.
func Underscore(s string) string {
	out := make([]rune, 0, len(s)+4)
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				out = append(out, '_')
			}
			out = append(out, unicode.ToLower(r))
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
