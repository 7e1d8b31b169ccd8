// Command tcl is a small interactive shell over the keyword-value core. It
// exists to exercise the library the way an embedding interpreter would:
// command and subcommand words are resolved through GetIndex (so unique
// abbreviations work at the prompt, and repeated words hit the index cache),
// and arity errors go through WrongNumArgs.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/mlafon/tcl"
)

const (
	appName     = "tcl"
	historyFile = ".tcl_history"
	prompt      = "% "
)

func red(s string) string  { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Println(tcl.Version)
			return
		case "-h", "--help", "help":
			usage()
			return
		default:
			fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, os.Args[1])
			usage()
			os.Exit(2)
		}
	}
	os.Exit(repl())
}

func usage() {
	fmt.Printf(`tcl %s (built %s)

Usage:
  %s            Start the interactive shell.
  %s version    Print the compiled version.

Shell commands may be abbreviated to any unique prefix.
`, tcl.Version, tcl.BuildDate, appName, appName)
}

// -----------------------------------------------------------------------------
// commands
// -----------------------------------------------------------------------------

type shell struct {
	vars map[string]string
}

// exitRequest unwinds from a command handler to the REPL loop, so the liner
// is closed and history flushed before the process exits.
type exitRequest struct {
	code int
}

func (e exitRequest) Error() string { return "exit " + strconv.Itoa(e.code) }

type command struct {
	name  string
	usage string // argument summary for wrong-#-args messages
	fn    func(sh *shell, args []*tcl.Value) (string, error)
}

var commands = []command{
	{"exit", "?code?", cmdExit},
	{"puts", "string", cmdPuts},
	{"set", "varName ?newValue?", cmdSet},
	{"string", "option arg ?arg ...?", cmdString},
	{"unset", "varName ?varName ...?", cmdUnset},
}

// The command table interleaves names with their usage strings, so lookups
// walk it at stride 2.
var cmdTable = func() *tcl.Table {
	flat := make([]string, 0, 2*len(commands))
	for _, c := range commands {
		flat = append(flat, c.name, c.usage)
	}
	return tcl.NewTable(flat...)
}()

func (sh *shell) eval(words []*tcl.Value) (string, error) {
	idx, err := tcl.GetIndexFromStruct(words[0], cmdTable, 2, "command", false)
	if err != nil {
		return "", err
	}
	return commands[idx].fn(sh, words)
}

func wrongArgs(lead []*tcl.Value, usage string) error {
	return errors.New(tcl.WrongNumArgs(lead, nil, usage))
}

func cmdExit(sh *shell, args []*tcl.Value) (string, error) {
	code := 0
	switch len(args) {
	case 1:
	case 2:
		n, err := strconv.Atoi(args[1].String())
		if err != nil {
			return "", fmt.Errorf("expected integer but got %q", args[1].String())
		}
		code = n
	default:
		return "", wrongArgs(args[:1], "?code?")
	}
	return "", exitRequest{code: code}
}

func cmdPuts(sh *shell, args []*tcl.Value) (string, error) {
	if len(args) != 2 {
		return "", wrongArgs(args[:1], "string")
	}
	fmt.Println(args[1].String())
	return "", nil
}

func cmdSet(sh *shell, args []*tcl.Value) (string, error) {
	switch len(args) {
	case 2:
		v, ok := sh.vars[args[1].String()]
		if !ok {
			return "", fmt.Errorf("can't read %q: no such variable", args[1].String())
		}
		return v, nil
	case 3:
		sh.vars[args[1].String()] = args[2].String()
		return args[2].String(), nil
	default:
		return "", wrongArgs(args[:1], "varName ?newValue?")
	}
}

func cmdUnset(sh *shell, args []*tcl.Value) (string, error) {
	if len(args) < 2 {
		return "", wrongArgs(args[:1], "varName ?varName ...?")
	}
	for _, a := range args[1:] {
		delete(sh.vars, a.String())
	}
	return "", nil
}

var stringSubTable = tcl.NewTable("index", "length", "reverse", "tolower", "toupper")

func cmdString(sh *shell, args []*tcl.Value) (string, error) {
	if len(args) < 2 {
		return "", wrongArgs(args[:1], "option arg ?arg ...?")
	}
	idx, err := tcl.GetIndex(args[1], stringSubTable, "option", false)
	if err != nil {
		return "", err
	}

	// args[1] now caches its resolved keyword, so the usage messages below
	// name the full subcommand even when it was abbreviated.
	switch idx {
	case 0: // index
		if len(args) != 4 {
			return "", wrongArgs(args[:2], "string charIndex")
		}
		s := args[2].String()
		i, err := strconv.Atoi(args[3].String())
		if err != nil || i < 0 || i >= len(s) {
			return "", fmt.Errorf("bad index %q", args[3].String())
		}
		return string(s[i]), nil
	case 1: // length
		if len(args) != 3 {
			return "", wrongArgs(args[:2], "string")
		}
		return strconv.Itoa(len(args[2].String())), nil
	case 2: // reverse
		if len(args) != 3 {
			return "", wrongArgs(args[:2], "string")
		}
		rs := []rune(args[2].String())
		for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
			rs[i], rs[j] = rs[j], rs[i]
		}
		return string(rs), nil
	case 3: // tolower
		if len(args) != 3 {
			return "", wrongArgs(args[:2], "string")
		}
		return strings.ToLower(args[2].String()), nil
	default: // toupper
		if len(args) != 3 {
			return "", wrongArgs(args[:2], "string")
		}
		return strings.ToUpper(args[2].String()), nil
	}
}

// -----------------------------------------------------------------------------
// line splitting & substitution
// -----------------------------------------------------------------------------

// splitWords breaks a command line into words. Braces group verbatim (and
// nest), double quotes group with backslash escapes, everything else splits
// on whitespace.
func splitWords(line string) ([]string, error) {
	var words []string
	i := 0
	for {
		for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
		if i >= len(line) {
			return words, nil
		}
		switch line[i] {
		case '{':
			depth := 1
			j := i + 1
			for ; j < len(line) && depth > 0; j++ {
				switch line[j] {
				case '{':
					depth++
				case '}':
					depth--
				}
			}
			if depth != 0 {
				return nil, errors.New("missing close-brace")
			}
			words = append(words, line[i+1:j-1])
			i = j
		case '"':
			var b strings.Builder
			j := i + 1
			for ; j < len(line) && line[j] != '"'; j++ {
				if line[j] == '\\' && j+1 < len(line) {
					j++
				}
				b.WriteByte(line[j])
			}
			if j >= len(line) {
				return nil, errors.New("missing close-quote")
			}
			words = append(words, b.String())
			i = j + 1
		default:
			j := i
			for j < len(line) && line[j] != ' ' && line[j] != '\t' {
				j++
			}
			words = append(words, line[i:j])
			i = j
		}
	}
}

// substitute replaces $name with the variable's value. Unknown variables
// substitute to the empty string.
func (sh *shell) substitute(word string) string {
	if !strings.ContainsRune(word, '$') {
		return word
	}
	var b strings.Builder
	for i := 0; i < len(word); {
		if word[i] != '$' {
			b.WriteByte(word[i])
			i++
			continue
		}
		j := i + 1
		for j < len(word) && (isWordByte(word[j])) {
			j++
		}
		if j == i+1 {
			b.WriteByte('$')
			i++
			continue
		}
		b.WriteString(sh.vars[word[i+1:j]])
		i = j
	}
	return b.String()
}

func isWordByte(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func repl() int {
	fmt.Printf("tcl %s shell. Ctrl+D exits; commands may be abbreviated.\n", tcl.Version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	sh := &shell{vars: map[string]string{}}

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if err != nil {
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		raw, err := splitWords(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			continue
		}
		words := make([]*tcl.Value, len(raw))
		for i, w := range raw {
			words[i] = tcl.NewValue(sh.substitute(w))
		}

		out, err := sh.eval(words)
		if err != nil {
			var ex exitRequest
			if errors.As(err, &ex) {
				return ex.code
			}
			fmt.Fprintln(os.Stderr, red(err.Error()))
			continue
		}
		if out != "" {
			fmt.Println(blue(out))
		}
	}
}
