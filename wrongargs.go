// wrongargs.go
//
// The standard "wrong # args" usage message. Given the argument words a
// command was invoked with, build
//
//	wrong # args: should be "string length string"
//
// The interesting part is which text each word contributes. A word that
// carries a cached index rep prints the full table entry it resolved to, so
// the usage line shows "string length ..." even when the user typed
// "str le ..."; any other word prints its own text, quoted as a list element
// when needed. The first printed word is never quoted, matching how command
// names are conventionally rendered.
//
// Commands dispatched through an ensemble can hand over the words of the
// original invocation so the usage line reads in the caller's terms; that
// context is passed explicitly, never ambient.

package tcl

import "strings"

// EnsembleRewrite describes how an ensemble rewrote its invocation before
// dispatch: NumInserted words of the live argument list replaced the first
// NumRemoved words of Source.
type EnsembleRewrite struct {
	Source      []*Value
	NumRemoved  int
	NumInserted int
}

// WrongNumArgs builds the usage error text for a command invoked with the
// wrong number of arguments. args holds the leading words to echo; message,
// if non-empty, is appended after them inside the quotes ("?options?" and
// the like). rewrite may be nil.
func WrongNumArgs(args []*Value, rewrite *EnsembleRewrite, message string) string {
	var b strings.Builder
	b.WriteString(`wrong # args: should be "`)
	writeUsage(&b, args, rewrite, message)
	return b.String()
}

// AppendWrongNumArgs extends an existing usage error with an alternate call
// shape: `<prior> or "<usage>"`. Used by commands that accept several
// argument forms and want all of them listed in one message.
func AppendWrongNumArgs(prior string, args []*Value, rewrite *EnsembleRewrite, message string) string {
	var b strings.Builder
	b.WriteString(prior)
	b.WriteString(` or "`)
	writeUsage(&b, args, rewrite, message)
	return b.String()
}

func writeUsage(b *strings.Builder, args []*Value, rewrite *EnsembleRewrite, message string) {
	first := true

	word := func(s string) {
		if first {
			// The command name is printed as-is even when it would need
			// quoting as a list element.
			b.WriteString(s)
			first = false
			return
		}
		b.WriteString(QuoteElement(s))
	}

	// Rewrite only when every replaced word is actually in args; otherwise
	// the raw arguments are printed unchanged.
	if rewrite != nil && len(args) >= rewrite.NumInserted {
		args = args[rewrite.NumInserted:]
		n := rewrite.NumRemoved
		if n > len(rewrite.Source) {
			n = len(rewrite.Source)
		}
		for i := 0; i < n; i++ {
			// Rewritten source words are never index-typed; print their text.
			word(rewrite.Source[i].String())
			if i < n-1 || len(args) > 0 || message != "" {
				b.WriteByte(' ')
			}
		}
	}

	for i, arg := range args {
		// An index-typed word prints the table entry it resolved to, so the
		// usage line is correct even when the word was abbreviated.
		if arg.Type() == IndexType {
			b.WriteString(IndexType.UpdateString(arg.IntRep()))
			first = false
		} else {
			word(arg.String())
		}
		if i < len(args)-1 || message != "" {
			b.WriteByte(' ')
		}
	}

	if message != "" {
		b.WriteString(message)
	}
	b.WriteByte('"')
}
