// Package naming provides lint rules about identifier capitalization.
//
// Rules in this package:
//   - var-name-lowercase: let/var bindings start with a lowercase letter
//   - type-name-capitalized: type names start with an uppercase letter
package naming

// ident is an identifier-shaped token found in the code portion of a line.
type ident struct {
	text string
	col  int // 1-based column of the first byte
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentByte(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// identifiers tokenizes the code portion of a line into identifier words.
// Masked bytes come in as spaces, so strings and comments never produce
// tokens.
func identifiers(code string) []ident {
	var ids []ident
	i := 0
	for i < len(code) {
		if !isIdentStart(code[i]) {
			i++
			continue
		}
		start := i
		for i < len(code) && isIdentByte(code[i]) {
			i++
		}
		ids = append(ids, ident{text: code[start:i], col: start + 1})
	}
	return ids
}
