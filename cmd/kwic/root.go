package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/kwic/index"
	"github.com/spf13/cobra"
)

// options collects the flags shared by all sub-commands.
type options struct {
	configPath string
	trace      string
	tokenizer  string
	minLength  int
	keywords   bool
	cfg        Config
}

// configure loads the configuration file and applies flags given explicitly.
func (o *options) configure(cmd *cobra.Command) error {
	cfg, err := loadConfig(o.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("trace") {
		cfg.Trace = o.trace
	}
	if flags.Changed("tokenizer") {
		cfg.Tokenizer = o.tokenizer
	}
	if flags.Changed("min-length") {
		cfg.MinLength = o.minLength
	}
	if flags.Changed("keywords") {
		cfg.Keywords = o.keywords
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	o.cfg = cfg
	setupTracing(cfg.Trace)
	return nil
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:           "kwic [file…]",
		Short:         "Create a Key-Word-In-Context index",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.configure(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndex(cmd.InOrStdin(), cmd.OutOrStdout(), args, opts.cfg)
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Configuration file path (TOML)")
	flags.StringVar(&opts.trace, "trace", "Error", "Trace level [Debug|Info|Error]")
	flags.StringVar(&opts.tokenizer, "tokenizer", wordTokenizer, "Tokenizer [word|lexmachine]")
	flags.IntVar(&opts.minLength, "min-length", 0, "Ignore words with less letters")
	rootCmd.Flags().BoolVarP(&opts.keywords, "keywords", "k", false, "Print the distinct keywords instead of the index")

	rootCmd.AddCommand(newWordsCommand(opts))
	rootCmd.AddCommand(newREPLCommand(opts))
	return rootCmd
}

// runIndex writes the KWIC index of the files given, or of stdin if there are
// none, to out. All files contribute to a single index.
func runIndex(stdin io.Reader, out io.Writer, files []string, cfg Config) error {
	input := stdin
	if len(files) > 0 {
		readers := make([]io.Reader, 0, 2*len(files))
		for _, name := range files {
			f, err := os.Open(name)
			if err != nil {
				return fmt.Errorf("cannot open input: %w", err)
			}
			defer f.Close()
			// separate files, as the last line of a file may lack a newline
			readers = append(readers, f, strings.NewReader("\n"))
		}
		input = io.MultiReader(readers...)
	}
	iopts, err := cfg.indexOptions()
	if err != nil {
		return err
	}
	ix, err := index.Build(input, iopts...)
	if err != nil {
		return err
	}
	tracer().Infof("index has %d entries", ix.Len())
	if cfg.Keywords {
		for _, w := range ix.Keywords() {
			if _, err := fmt.Fprintln(out, w); err != nil {
				return err
			}
		}
		return nil
	}
	_, err = ix.WriteTo(out)
	return err
}
