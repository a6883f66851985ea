package engine

import "strings"

// kwPrefix marks keyword arguments after preprocessing.
const kwPrefix = "__kw_"

// preprocessSource rewrites script source into something zygomys accepts:
//
//  1. :keyword becomes the string "__kw_keyword", so keywords never clash
//     with script variables.
//  2. kebab-case identifiers become snake_case (cell-key -> cell_key);
//     zygomys reads a bare hyphen as subtraction.
//  3. ; line comments become // comments.
//
// String literals pass through untouched.
func preprocessSource(source string) string {
	var out strings.Builder
	out.Grow(len(source) + len(source)/4)
	b := []byte(source)

	for i := 0; i < len(b); {
		switch c := b[i]; {
		case c == '"' || c == '`':
			i = copyQuoted(&out, b, i)
		case c == ';':
			out.WriteString("//")
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				out.WriteByte(b[i])
				i++
			}
		case c == ':' && i+1 < len(b) && b[i+1] == '=':
			out.WriteString(":=")
			i += 2
		case c == ':' && i+1 < len(b) && isLetter(b[i+1]):
			j := i + 1
			for j < len(b) && isKWChar(b[j]) {
				j++
			}
			out.WriteByte('"')
			out.WriteString(kwPrefix)
			out.Write(b[i+1 : j])
			out.WriteByte('"')
			i = j
		case c == '-' && i > 0 && i+1 < len(b) && isIdentChar(b[i-1]) && isLetter(b[i+1]):
			out.WriteByte('_')
			i++
		default:
			out.WriteByte(c)
			i++
		}
	}
	return out.String()
}

// copyQuoted copies the literal opening at b[i] and returns the index just
// past its closing quote. Backslash escapes apply to double quotes only.
func copyQuoted(out *strings.Builder, b []byte, i int) int {
	q := b[i]
	out.WriteByte(q)
	i++
	for i < len(b) && b[i] != q {
		if q == '"' && b[i] == '\\' && i+1 < len(b) {
			out.Write(b[i : i+2])
			i += 2
			continue
		}
		out.WriteByte(b[i])
		i++
	}
	if i < len(b) {
		out.WriteByte(b[i])
		i++
	}
	return i
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}
