package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/oledfont/glyph"
	"github.com/npillmayer/oledfont/table"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runBrowseCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	s := resolveSettings(flags)
	doc := mustLoad(s.Source, s.Encoding)
	repl, err := readline.New("oledfont > ")
	if err != nil {
		fatalf("cannot start REPL: %v", err)
	}
	defer repl.Close()
	intp := &Intp{doc: doc, repl: repl}
	pterm.Info.Printf("Browsing %s, quit with <ctrl>D\n", s.Source)
	intp.REPL()
}

// Intp is our interpreter object
type Intp struct {
	doc  *table.Document
	repl *readline.Instance
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		out, quit, err := intp.execute(line)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
		pterm.Println(out)
	}
	pterm.Info.Println("Good bye!")
}

var errUsage = errors.New("usage: 6x8 <char> | 8x16 <char> | hzk <name> | tables | drops | help | quit")

// execute runs a single command line and returns its output.
func (intp *Intp) execute(line string) (out string, quit bool, err error) {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch strings.ToLower(cmd) {
	case "quit", "exit":
		return "", true, nil
	case "help":
		return helpText, false, nil
	case "tables":
		var sb strings.Builder
		for _, t := range glyph.Tables {
			fmt.Fprintf(&sb, "%-5s %-34s %4d glyphs\n", t, table.Declaration(t), intp.doc.Count(t))
		}
		return strings.TrimSuffix(sb.String(), "\n"), false, nil
	case "drops":
		if len(intp.doc.Drops) == 0 {
			return "no candidates dropped", false, nil
		}
		lines := make([]string, len(intp.doc.Drops))
		for i, d := range intp.doc.Drops {
			lines[i] = d.String()
		}
		return strings.Join(lines, "\n"), false, nil
	case "6x8":
		c, err := charArg(arg)
		if err != nil {
			return "", false, err
		}
		if g, ok := intp.doc.Lookup6x8(c).Unwrap(); ok {
			return table.Render6x8(g), false, nil
		}
		return "", false, fmt.Errorf("no 6x8 glyph for %q", c)
	case "8x16":
		c, err := charArg(arg)
		if err != nil {
			return "", false, err
		}
		if g, ok := intp.doc.Lookup8x16(c).Unwrap(); ok {
			return table.Render8x16(g), false, nil
		}
		return "", false, fmt.Errorf("no 8x16 glyph for %q", c)
	case "hzk":
		if arg == "" {
			return "", false, errUsage
		}
		found := intp.doc.LookupHanzi(arg)
		if len(found) == 0 {
			return "", false, fmt.Errorf("no 16x16 glyph named %q", arg)
		}
		lines := make([]string, len(found))
		for i, g := range found {
			lines[i] = table.Render16x16(g)
		}
		return strings.Join(lines, "\n"), false, nil
	}
	return "", false, errUsage
}

// charArg resolves a command argument to a character. "space" stands for ' ',
// which cannot be typed as an argument.
func charArg(arg string) (byte, error) {
	if arg == "space" {
		return ' ', nil
	}
	c, ok := glyph.ASCII.Lookup(arg).Unwrap()
	if !ok {
		return 0, fmt.Errorf("not a printable ASCII character: %q", arg)
	}
	return c, nil
}

const helpText = `Commands:
  6x8 <char>    show the 6x8 glyph for a character
  8x16 <char>   show the 8x16 glyph for a character
  hzk <name>    show all 16x16 glyphs with a name
  tables        list tables and glyph counts
  drops         list dropped candidates
  quit          leave (or <ctrl>D)
A space character is given as 'space'.`
