/*
Package kwic is a toolbox for Key-Word-In-Context indexes.

A KWIC index lists every cyclic rotation of every input line, sorted
case-insensitively word by word, so that each keyword can be found
together with its context. Package structure is as follows:

■ word: Package word implements validated alphabetic words and a reader
extracting them from character input.

■ scanner: Package scanner defines a tokenizer interface producing word tokens,
with a lexmachine based implementation in sub-package `lexmach`.

■ index: Package index reads lines, rotates and sorts them, and writes the
resulting KWIC index.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package kwic
