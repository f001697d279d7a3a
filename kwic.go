package kwic

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Tokenizers define their own
// constants for it.
type TokType int

// Tokens represent input tokens. They are produced by a tokenizer from a
// line of input.
//
// An example would be a token for a word:
//
//    TokType = WordTok     // identifier for this kind of tokens
//    Lexeme  = "switchBF"  // lexeme how it appeared in the input line
//    Value   = word.Word   // the validated word
//    Span    = 1…9         // occured from byte position 1 in the input line
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run. A span
// denotes a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
