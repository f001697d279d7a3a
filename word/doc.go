/*
Package word implements words for KWIC indexes.

A Word is a non-empty run of ASCII letters. Words compare case-insensitively,
but keep their original spelling for output:

    w, err := word.New("BASIC")           // err is nil
    word.Equal(w, word.MustNew("basic"))  // => true
    fmt.Println(w)                        // => BASIC

Words are extracted from character input with a Reader. The reader skips
everything which is not a letter and collects the next run of letters.
Digits and punctuation within a run split it, i.e. "PL/SQL" yields "PL" and
"SQL". The rune terminating a word is not consumed.

    r := word.NewReader(strings.NewReader("3switchBF"))
    w, err := r.Next()                    // w = switchBF

A failed extraction is reported as an error and never alters a word a client
already holds; see Reader.ReadInto. Running out of input is signalled by
ErrEndOfInput, which is an expected condition and not a fatal one.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package word

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'kwic.word'.
func tracer() tracing.Trace {
	return tracing.Select("kwic.word")
}
