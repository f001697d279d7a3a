package word

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat is returned when a word is constructed from a string which is
// empty or contains anything but ASCII letters.
var ErrInvalidFormat = errors.New("invalid word format")

// ErrEndOfInput is returned when no further word can be extracted from an input.
var ErrEndOfInput = errors.New("end of input")

// Word is a validated, case-insensitively comparable alphabetic token.
// The zero value is not a valid word; use New to create one.
type Word struct {
	text string
}

// New creates a word from s. It returns an error wrapping ErrInvalidFormat if s is
// empty or contains a character which is not an ASCII letter.
func New(s string) (Word, error) {
	if s == "" {
		return Word{}, fmt.Errorf("cannot create an empty word: %w", ErrInvalidFormat)
	}
	for i := 0; i < len(s); i++ {
		if !isLetter(rune(s[i])) {
			return Word{}, fmt.Errorf("cannot create word from %q: %w", s, ErrInvalidFormat)
		}
	}
	return Word{text: s}, nil
}

// MustNew is like New, but panics if s is not a valid word.
func MustNew(s string) Word {
	w, err := New(s)
	if err != nil {
		panic(err)
	}
	return w
}

// String returns the text of a word, with its original case preserved.
func (w Word) String() string {
	return w.text
}

// IsZero is true for the zero value of Word, which is not a valid word.
func (w Word) IsZero() bool {
	return w.text == ""
}

// Len returns the number of letters of w.
func (w Word) Len() int {
	return len(w.text)
}

// --- Comparison ------------------------------------------------------------

// Compare compares two words case-insensitively. It returns -1 if a sorts
// before b, +1 if a sorts after b, and 0 if both are equal modulo case.
//
// Comparison is ordinal on the lowercased letters, therefore "ADA" < "java"
// and "Lisp" > "brainfuck".
func Compare(a, b Word) int {
	return compareFolded(a.text, b.text)
}

// Equal is true if a and b consist of the same letters, ignoring case.
func Equal(a, b Word) bool {
	return Compare(a, b) == 0
}

// Less is true if a sorts before b, ignoring case.
func Less(a, b Word) bool {
	return Compare(a, b) < 0
}

// CompareSeq compares two word sequences lexicographically, word by word.
// A sequence which is a strict prefix of another one sorts first.
func CompareSeq(a, b []Word) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

func compareFolded(a, b string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		ca, cb := lower(a[i]), lower(b[i])
		if ca < cb {
			return -1
		} else if ca > cb {
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}
