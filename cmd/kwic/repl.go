package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/kwic/index"
	"github.com/npillmayer/kwic/scanner"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newREPLCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively collect lines and inspect their KWIC index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			initDisplay()
			intp, err := NewIntp(opts.cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			repl, err := readline.New(opts.cfg.Prompt)
			if err != nil {
				return err
			}
			defer repl.Close()
			intp.repl = repl
			pterm.Info.Println("Welcome to the KWIC REPL")
			tracer().Infof("Quit with <ctrl>D")
			intp.REPL()
			return nil
		},
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object. It collects input lines for a session
// and evaluates commands on them.
type Intp struct {
	repl     *readline.Instance
	lines    []string
	opts     []index.Option
	tokenize index.TokenizerFactory
	out      io.Writer // index output goes here, status messages go to pterm
}

// NewIntp creates an interpreter for a configuration. Index output is written to out.
func NewIntp(cfg Config, out io.Writer) (*Intp, error) {
	f, err := cfg.tokenizerFactory()
	if err != nil {
		return nil, err
	}
	return &Intp{
		opts:     []index.Option{index.WithTokenizer(f), index.WithMinWordLength(cfg.MinLength)},
		tokenize: f,
		out:      out,
	}, nil
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
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

var errUnknownCommand = errors.New("unknown command")

const replHelp = `:index          print the KWIC index of all lines entered
:keywords       print the distinct keywords
:digest         print a fingerprint of the index
:words <text>   show the words of a text
:lines          print the lines entered
:reset          forget all lines
:quit           leave (or <ctrl>D)`

// Eval evaluates a line. Lines starting with ':' are commands, all other
// lines are added to the session.
func (intp *Intp) Eval(line string) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		intp.lines = append(intp.lines, line)
		pterm.Info.Println(fmt.Sprintf("line %d added", len(intp.lines)))
		return false, nil
	}
	cmd, arg := line, ""
	if i := strings.IndexAny(line, " \t"); i > 0 {
		cmd, arg = line[:i], strings.TrimSpace(line[i:])
	}
	tracer().Debugf("command %q, argument %q", cmd, arg)
	switch cmd {
	case ":quit", ":q":
		return true, nil
	case ":help":
		pterm.Println(replHelp)
	case ":reset":
		intp.lines = nil
		pterm.Info.Println("session cleared")
	case ":lines":
		for i, l := range intp.lines {
			fmt.Fprintf(intp.out, "%3d  %s\n", i+1, l)
		}
	case ":index":
		ix, err := intp.index()
		if err != nil {
			return false, err
		}
		_, err = ix.WriteTo(intp.out)
		return false, err
	case ":keywords":
		ix, err := intp.index()
		if err != nil {
			return false, err
		}
		for _, w := range ix.Keywords() {
			fmt.Fprintln(intp.out, w)
		}
	case ":digest":
		ix, err := intp.index()
		if err != nil {
			return false, err
		}
		d, err := ix.Digest()
		if err != nil {
			return false, err
		}
		fmt.Fprintln(intp.out, d)
	case ":words":
		intp.showWords(arg)
	default:
		return false, fmt.Errorf("%w: %s (try :help)", errUnknownCommand, cmd)
	}
	return false, nil
}

func (intp *Intp) index() (*index.Index, error) {
	input := strings.NewReader(strings.Join(intp.lines, "\n"))
	return index.Build(input, intp.opts...)
}

// showWords displays the words of a text as a tree on the terminal.
func (intp *Intp) showWords(text string) {
	ll := pterm.LeveledList{pterm.LeveledListItem{Level: 0, Text: text}}
	t := intp.tokenize(text)
	for token := t.NextToken(); token.TokType() != scanner.EOF; token = t.NextToken() {
		ll = append(ll, pterm.LeveledListItem{
			Level: 1,
			Text:  fmt.Sprintf("%s %s", token.Lexeme(), token.Span()),
		})
	}
	tracer().Debugf("|ll| = %d", len(ll))
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}
