// quote_test.go
package tcl

import "testing"

func Test_QuoteElement(t *testing.T) {
	cases := []struct{ in, want string }{
		{"plain", "plain"},
		{"with-dash_and.dots", "with-dash_and.dots"},
		{"", "{}"},
		{"two words", "{two words}"},
		{"tab\there", "{tab\there}"},
		{"line\nbreak", "{line\nbreak}"},
		{"a{b}c", "{a{b}c}"},
		{"$var", "{$var}"},
		{"[cmd]", "{[cmd]}"},
		{`semi;colon`, `{semi;colon}`},
		// Unbalanced braces cannot be brace-quoted.
		{"a{b", `a\{b`},
		{"a}b", `a\}b`},
		// Nor can words ending in a backslash.
		{`a\`, `a\\`},
		{`a \`, `a\ \\`},
	}
	for _, tc := range cases {
		if got := QuoteElement(tc.in); got != tc.want {
			t.Fatalf("QuoteElement(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func Test_QuoteElement_BackslashEscapesSpecials(t *testing.T) {
	// A word with an unbalanced brace and a newline falls back to
	// backslash form, with whitespace written as escape letters.
	if got := QuoteElement("a{b\nc"); got != `a\{b\nc` {
		t.Fatalf("got %q", got)
	}
}
