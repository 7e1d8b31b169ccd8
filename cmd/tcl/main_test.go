// main_test.go
package main

import (
	"errors"
	"testing"

	"github.com/mlafon/tcl"
)

func evalLine(t *testing.T, sh *shell, line string) (string, error) {
	t.Helper()
	raw, err := splitWords(line)
	if err != nil {
		t.Fatalf("splitWords(%q): %v", line, err)
	}
	words := make([]*tcl.Value, len(raw))
	for i, w := range raw {
		words[i] = tcl.NewValue(sh.substitute(w))
	}
	return sh.eval(words)
}

func Test_CmdExit_UnwindsToLoop(t *testing.T) {
	sh := &shell{vars: map[string]string{}}

	_, err := evalLine(t, sh, "exit 3")
	var ex exitRequest
	if !errors.As(err, &ex) || ex.code != 3 {
		t.Fatalf("want exitRequest{3}, got %v", err)
	}

	// Abbreviated and argument-free: default code 0.
	_, err = evalLine(t, sh, "ex")
	if !errors.As(err, &ex) || ex.code != 0 {
		t.Fatalf("want exitRequest{0}, got %v", err)
	}
}

func Test_CmdExit_BadCodeDoesNotExit(t *testing.T) {
	sh := &shell{vars: map[string]string{}}
	_, err := evalLine(t, sh, "exit nope")
	var ex exitRequest
	if err == nil || errors.As(err, &ex) {
		t.Fatalf("want ordinary error, got %v", err)
	}
}
