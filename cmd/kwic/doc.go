/*
Command kwic creates Key-Word-In-Context indexes from text files or
standard input.

    kwic [file…]         write the KWIC index of the input to stdout
    kwic words [text…]   list the words of a text, with their positions
    kwic repl            interactive mode

Flags may be given in a TOML configuration file as well (flag --config):

    trace      = "Info"        # trace level [Debug|Info|Error]
    tokenizer  = "lexmachine"  # "word" (default) or "lexmachine"
    min_length = 3             # ignore words with less letters
    keywords   = false         # print the distinct keywords instead of the index
    prompt     = "kwic> "      # REPL prompt

Flags given on the command line override values of the configuration file.

In interactive mode, every line entered is added to the session. Lines
starting with a colon are commands; enter ":help" for a list.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// tracer traces with key 'kwic.cli'
func tracer() tracing.Trace {
	return tracing.Select("kwic.cli")
}

var traceKeys = []string{"kwic.cli", "kwic.index", "kwic.scanner", "kwic.word"}

// setupTracing installs a Go log based tracer and sets the trace level
// for all packages of this module.
func setupTracing(level string) {
	gtrace.SyntaxTracer = gologadapter.New()
	l := tracing.TraceLevelFromString(level)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
	tracer().Debugf("Trace level is %s", level)
}
