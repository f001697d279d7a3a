package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/kwic/scanner"
	"github.com/spf13/cobra"
)

func newWordsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "words [text…]",
		Short: "List the words of a text with their positions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return listWords(cmd.OutOrStdout(), strings.Join(args, " "), opts.cfg)
			}
			lines := bufio.NewScanner(cmd.InOrStdin())
			for lines.Scan() {
				if err := listWords(cmd.OutOrStdout(), lines.Text(), opts.cfg); err != nil {
					return err
				}
			}
			return lines.Err()
		},
	}
}

// listWords prints every word token of a line together with its span.
func listWords(out io.Writer, line string, cfg Config) error {
	f, err := cfg.tokenizerFactory()
	if err != nil {
		return err
	}
	var tokerr error
	t := f(line)
	t.SetErrorHandler(func(e error) {
		tokerr = e
	})
	for token := t.NextToken(); token.TokType() != scanner.EOF; token = t.NextToken() {
		if len(token.Lexeme()) < cfg.MinLength {
			continue
		}
		if _, err := fmt.Fprintf(out, "%-20s %s\n", token.Lexeme(), token.Span()); err != nil {
			return err
		}
	}
	return tokerr
}
