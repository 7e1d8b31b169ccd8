// errors.go: user-facing error values for keyword lookup
//
// Lookup failures are ordinary error values, never panics: resolution is a
// pure function of (text, table, stride, exact) and the caller decides
// whether to surface the message or recover. The wording here is part of the
// package's contract and is relied on by shells built on top of it:
//
//	bad option "foo": must be start, stop, or status
//	ambiguous option "st": must be start, stop, or status
//
// The choice list uses ", " between all but the last pair and an "or" before
// the final entry; a single-entry table lists just that entry.

package tcl

import "errors"

// LookupKind classifies a failed keyword lookup.
type LookupKind int

const (
	// NoMatch: the input matched no entry, or was empty, or abbreviations
	// were disallowed.
	NoMatch LookupKind = iota
	// Ambiguous: the input abbreviated two or more entries and matched none
	// exactly.
	Ambiguous
)

// LookupError reports a failed keyword lookup. Choices lists every table
// entry in scan order.
type LookupError struct {
	Kind    LookupKind
	Label   string
	Input   string
	Choices []string
}

func (e *LookupError) Error() string {
	prefix := "bad "
	if e.Kind == Ambiguous {
		prefix = "ambiguous "
	}
	return prefix + e.Label + " \"" + e.Input + "\": must be " + joinChoices(e.Choices)
}

// ErrIndexConversion is returned by the index kind's SetFromAny: a generic
// value cannot be interpreted as a table index without the table, so the
// conversion must always go through GetIndex / GetIndexFromStruct. This is a
// permanent limitation of the kind, not a transient failure.
var ErrIndexConversion = errors.New("can't convert value to index except via GetIndex API")

// joinChoices renders a keyword list for error messages: "a", "a or b",
// "a, b, or c". An empty list renders as the empty string.
func joinChoices(choices []string) string {
	n := len(choices)
	if n == 0 {
		return ""
	}
	out := choices[0]
	for i := 1; i < n; i++ {
		if i == n-1 {
			if n > 2 {
				out += ", or "
			} else {
				out += " or "
			}
		} else {
			out += ", "
		}
		out += choices[i]
	}
	return out
}
