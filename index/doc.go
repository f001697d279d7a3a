/*
Package index generates KWIC (Key-Word-In-Context) indexes.

Input is read line by line. Every line is split into words (see package word),
and every cyclic rotation of a line's word sequence becomes an entry of the
index. Entries of all lines are sorted together, comparing word by word and
ignoring case. For input

    this is a test

the index is

    a test this is
    is a test this
    test this is a
    this is a test

Every entry is written with a single space after each word, i.e. an output
line always ends with a space before the newline. Lines without any words
do not contribute to the index.

Clients either call Generate for the complete pipeline or Build an Index to
inspect it before writing it out:

    ix, err := index.Build(os.Stdin)
    …
    ix.WriteTo(os.Stdout)

Indexes are held in memory in their entirety and are not suited for
unbounded input.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package index

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'kwic.index'.
func tracer() tracing.Trace {
	return tracing.Select("kwic.index")
}
