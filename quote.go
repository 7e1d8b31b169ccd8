// quote.go
//
// List-element quoting for words embedded in generated command text. A word
// that is empty or contains list-significant characters must be wrapped so
// it reads back as a single element: braces when the word brace-balances,
// backslash escapes otherwise.

package tcl

import "strings"

// QuoteElement returns s in a form that survives as one element of a command
// word list. Plain words come back verbatim.
func QuoteElement(s string) string {
	if s == "" {
		return "{}"
	}
	if !elementNeedsQuote(s) {
		return s
	}
	if bracesBalanced(s) && !strings.HasSuffix(s, "\\") {
		return "{" + s + "}"
	}
	return escapeElement(s)
}

func elementNeedsQuote(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r', '\v', '\f', '{', '}', '[', ']', '$', ';', '"', '\\':
			return true
		}
	}
	return false
}

// bracesBalanced reports whether braces in s nest properly, ignoring
// backslash-escaped ones.
func bracesBalanced(s string) bool {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

// escapeElement backslash-quotes every list-significant character. Used only
// when brace quoting would not read back correctly.
func escapeElement(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\n':
			b.WriteString(`\n`)
			continue
		case '\t':
			b.WriteString(`\t`)
			continue
		case '\r':
			b.WriteString(`\r`)
			continue
		case '\v':
			b.WriteString(`\v`)
			continue
		case '\f':
			b.WriteString(`\f`)
			continue
		case ' ', '{', '}', '[', ']', '$', ';', '"', '\\':
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}
