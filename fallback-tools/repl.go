package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/fontfallback"
	"github.com/npillmayer/fontfallback/fallback"
	"github.com/npillmayer/fontfallback/graphemes"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	chain *fallback.Chain
	lang  string
	repl  *readline.Instance
	items fallback.Itemization // re-used between lines
}

// NewIntp creates an interpreter itemizing text with chain.
func NewIntp(chain *fallback.Chain, lang string) (*Intp, error) {
	repl, err := readline.New("fallback > ")
	if err != nil {
		return nil, err
	}
	return &Intp{chain: chain, lang: lang, repl: repl}, nil
}

func (intp *Intp) String() string {
	lang := intp.lang
	if lang == "" {
		lang = "-"
	}
	return fmt.Sprintf("( chain=%s lang=%s )", intp.chain.Name(), lang)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	defer intp.repl.Close()
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			tracer().Errorf("%v", err)
			continue
		}
		quit, err := intp.execute(cmd)
		if err != nil {
			tracer().Errorf("%v", err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Op is a REPL operation.
type Op int

const (
	ITEMIZE Op = iota
	QUIT
	HELP
	LANG
	CHAIN
	GRAPHEMES
)

var opMap = map[string]Op{
	"quit":      QUIT,
	"help":      HELP,
	"lang":      LANG,
	"chain":     CHAIN,
	"graphemes": GRAPHEMES,
}

// Command is a parsed REPL input line.
type Command struct {
	op  Op
	arg string
}

// parseCommand parses a line of input. Lines starting with ':' are commands,
// with an optional argument separated by whitespace. Every other line is text
// to itemize.
func parseCommand(line string) (Command, error) {
	if !strings.HasPrefix(line, ":") {
		return Command{op: ITEMIZE, arg: line}, nil
	}
	word, arg, _ := strings.Cut(strings.TrimSpace(line[1:]), " ")
	op, ok := opMap[strings.ToLower(word)]
	if !ok {
		return Command{}, fmt.Errorf("unknown command: %q", word)
	}
	arg = strings.TrimSpace(arg)
	switch op {
	case GRAPHEMES:
		if arg == "" {
			return Command{}, errors.New(":graphemes requires text")
		}
	case LANG:
		lang, err := canonicalLanguage(arg)
		if err != nil {
			return Command{}, err
		}
		arg = lang
	}
	return Command{op: op, arg: arg}, nil
}

func (intp *Intp) execute(cmd Command) (quit bool, err error) {
	switch cmd.op {
	case QUIT:
		return true, nil
	case HELP:
		help()
	case LANG:
		intp.lang = cmd.arg
	case CHAIN:
		printChain(intp.chain)
	case GRAPHEMES:
		printClusters(graphemes.Clusters(cmd.arg))
	case ITEMIZE:
		intp.chain.ItemizeInto(&intp.items, cmd.arg, intp.lang)
		printSegments(fontfallback.Describe(intp.chain, cmd.arg, intp.items))
	default:
		return false, fmt.Errorf("operation not implemented: %d", cmd.op)
	}
	return false, nil
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	<text>              itemize a line of text
	:lang [<tag>]       set the preferred language (BCP 47), none if empty
	:chain              print the families of the fallback chain
	:graphemes <text>   split text into grapheme clusters
	:help               print this message
	:quit               leave (or <ctrl>D)
	`)
}
