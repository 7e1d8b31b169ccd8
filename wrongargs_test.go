// wrongargs_test.go
package tcl

import "testing"

func vals(texts ...string) []*Value {
	out := make([]*Value, len(texts))
	for i, s := range texts {
		out[i] = NewValue(s)
	}
	return out
}

func eqMsg(t *testing.T, got, want string) {
	t.Helper()
	if got != want {
		t.Fatalf("message mismatch:\ngot:  %s\nwant: %s", got, want)
	}
}

func Test_WrongNumArgs_QuotesWordsWithSpaces(t *testing.T) {
	got := WrongNumArgs(vals("foo", "bar baz", "qux"), nil, "extra")
	eqMsg(t, got, `wrong # args: should be "foo {bar baz} qux extra"`)
}

func Test_WrongNumArgs_FirstWordNeverQuoted(t *testing.T) {
	got := WrongNumArgs(vals("my cmd", "arg"), nil, "")
	eqMsg(t, got, `wrong # args: should be "my cmd arg"`)
}

func Test_WrongNumArgs_NoTrailingSpaceWithoutMessage(t *testing.T) {
	got := WrongNumArgs(vals("foo", "bar"), nil, "")
	eqMsg(t, got, `wrong # args: should be "foo bar"`)
}

func Test_WrongNumArgs_MessageOnly(t *testing.T) {
	got := WrongNumArgs(nil, nil, "option ?arg ...?")
	eqMsg(t, got, `wrong # args: should be "option ?arg ...?"`)
}

func Test_WrongNumArgs_PrintsResolvedKeywordNotAbbreviation(t *testing.T) {
	verbs := NewTable("start", "stop")
	sub := NewValue("sta")
	if _, err := GetIndex(sub, verbs, "verb", false); err != nil {
		t.Fatalf("GetIndex: %v", err)
	}

	got := WrongNumArgs([]*Value{NewValue("demo"), sub}, nil, "name")
	eqMsg(t, got, `wrong # args: should be "demo start name"`)
}

func Test_WrongNumArgs_EnsembleRewrite(t *testing.T) {
	rw := &EnsembleRewrite{
		Source:      vals("widget", "do something"),
		NumRemoved:  2,
		NumInserted: 2,
	}
	// The two live words that replaced the source words are dropped; the
	// held-out tail and message follow the rewritten prefix.
	got := WrongNumArgs(vals("obj", "method", "x"), rw, "value")
	eqMsg(t, got, `wrong # args: should be "widget {do something} x value"`)
}

func Test_WrongNumArgs_RewriteSkippedWhenTooFewArgs(t *testing.T) {
	rw := &EnsembleRewrite{
		Source:      vals("widget"),
		NumRemoved:  1,
		NumInserted: 3,
	}
	got := WrongNumArgs(vals("obj", "method"), rw, "")
	eqMsg(t, got, `wrong # args: should be "obj method"`)
}

func Test_WrongNumArgs_RewriteConsumesAllArgs(t *testing.T) {
	rw := &EnsembleRewrite{
		Source:      vals("widget", "configure"),
		NumRemoved:  2,
		NumInserted: 2,
	}
	got := WrongNumArgs(vals("obj", "method"), rw, "")
	eqMsg(t, got, `wrong # args: should be "widget configure"`)
}

func Test_AppendWrongNumArgs_ListsAlternateShape(t *testing.T) {
	first := WrongNumArgs(vals("clock", "format"), nil, "clockval")
	both := AppendWrongNumArgs(first, vals("clock", "scan"), nil, "string")
	eqMsg(t, both, `wrong # args: should be "clock format clockval" or "clock scan string"`)
}
