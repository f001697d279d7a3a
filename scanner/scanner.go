/*
Package scanner defines an interface for tokenizers producing word tokens for
KWIC indexes.

Two implementations are provided: (1) a tokenizer backed by package word,
and (2) an adapter for lexmachine, living in sub-package `lexmach`. Both
produce the same tokens for any input.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/kwic"
	"github.com/npillmayer/kwic/word"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'kwic.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("kwic.scanner")
}

// Token categories.
const (
	EOF     kwic.TokType = -1
	WordTok kwic.TokType = 1
)

// Tokenizer is a scanner interface. A tokenizer delivers tokens of type WordTok
// until its input is exhausted, then tokens of type EOF.
type Tokenizer interface {
	NextToken() kwic.Token
	SetErrorHandler(func(error))
}

// WordTokenizer is a default implementation, backed by word.Reader.
// Create one with Words.
type WordTokenizer struct {
	reader    *word.Reader
	sourceID  string
	Error     func(error) // error handler
	minLength int         // skip words shorter than this
}

var _ Tokenizer = (*WordTokenizer)(nil)

// LogError is the default error reporting function for tokenizers.
func LogError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// Words creates a tokenizer for the words of an input.
func Words(sourceID string, input io.Reader, opts ...Option) *WordTokenizer {
	t := &WordTokenizer{
		reader:   word.NewReader(input),
		sourceID: sourceID,
		Error:    LogError,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetErrorHandler sets an error handler for the tokenizer.
func (t *WordTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = LogError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
//
// Read errors of the input are reported to the error handler, after which the
// tokenizer behaves as if it had reached the end of input.
func (t *WordTokenizer) NextToken() kwic.Token {
	for {
		w, err := t.reader.Next()
		if errors.Is(err, word.ErrEndOfInput) {
			tracer().Debugf("WordTokenizer reached end of input")
			return eofToken(t.reader.Span().To())
		} else if err != nil {
			t.Error(fmt.Errorf("%s: %w", t.sourceID, err))
			return eofToken(t.reader.Span().To())
		}
		if w.Len() < t.minLength {
			tracer().Debugf("skipping short word %q", w)
			continue
		}
		token := MakeDefaultToken(WordTok, w.String(), t.reader.Span())
		token.Val = w
		return token
	}
}

// Err returns the I/O error of the input, if any.
func (t *WordTokenizer) Err() error {
	if err := t.reader.Err(); !errors.Is(err, word.ErrEndOfInput) {
		return err
	}
	return nil
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// word tokenizer as well as the LexMachine scanner.
type DefaultToken struct {
	kind   kwic.TokType
	lexeme string
	Val    interface{}
	span   kwic.Span
}

func MakeDefaultToken(typ kwic.TokType, lexeme string, span kwic.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() kwic.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() kwic.Span {
	return t.span
}

func eofToken(pos uint64) kwic.Token {
	return DefaultToken{
		kind: EOF,
		span: kwic.Span{pos, pos},
	}
}

// --- Tokenizer options --------------------------------------------------------

// Option configures a word tokenizer.
type Option func(p *WordTokenizer)

// SkipShortWords instructs the tokenizer to drop words with less than n letters.
func SkipShortWords(n int) Option {
	return func(t *WordTokenizer) {
		t.minLength = n
	}
}

// --- Helpers ---------------------------------------------------------------

// Collect reads tokens from a tokenizer until EOF and returns the words found.
// Tokens which do not carry a word as their value are converted from their lexeme;
// if that fails, they are reported to the error handler passed in, if any.
func Collect(t Tokenizer, onError func(error)) []word.Word {
	var words []word.Word
	for token := t.NextToken(); token.TokType() != EOF; token = t.NextToken() {
		if w, ok := token.Value().(word.Word); ok {
			words = append(words, w)
			continue
		}
		w, err := word.New(token.Lexeme())
		if err != nil {
			if onError != nil {
				onError(err)
			}
			continue
		}
		words = append(words, w)
	}
	return words
}

// Lexeme is a helper function to receive a string from a token.
func Lexeme(token interface{}) string {
	switch t := token.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case kwic.Token:
		return t.Lexeme()
	default:
		return fmt.Sprintf("%v", t)
	}
}
