/*
Package lexmach provides an adapter to use the lexmachine scanner generator for
tokenizing KWIC input lines.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

The DFA recognizes runs of ASCII letters as words and skips everything else,
thus matching the behaviour of package word. Clients create an adapter once
and instantiate a scanner for each concrete input line.

	LM, err := lexmach.NewLMAdapter()
	if err != nil {
		// do error handling
	}
	scan, err := LM.Scanner("input line to tokenize")
	if err != nil {
		// do error handling
	}

The scanner implements the scanner.Tokenizer interface. Tokens are read until EOF.

	for token := scan.NextToken(); token.TokType() != scanner.EOF; token = scan.NextToken() {
		…
	}

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
