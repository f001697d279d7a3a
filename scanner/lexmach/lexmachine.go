package lexmach

import (
	"github.com/npillmayer/kwic"
	"github.com/npillmayer/kwic/scanner"
	"github.com/npillmayer/kwic/word"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'kwic.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("kwic.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a word scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter with a DFA for words.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter() (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	adapter.Lexer.Add([]byte(`[a-zA-Z]+`), MakeToken("WORD", int(scanner.WordTok)))
	adapter.Lexer.Add([]byte(`[^a-zA-Z]+`), Skip)
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{s, scanner.LogError}, nil
}

// Tokenizer is like Scanner, but reports a scanner creation error to the
// error handler and returns a tokenizer which is at EOF.
func (lm *LMAdapter) Tokenizer(input string) scanner.Tokenizer {
	s, err := lm.Scanner(input)
	if err != nil {
		s.Error(err)
	}
	return s
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = scanner.LogError
		return
	}
	lms.Error = h
}

// NextToken is part of the Tokenizer interface.
func (lms *LMScanner) NextToken() kwic.Token {
	if lms.scanner == nil {
		return scanner.MakeDefaultToken(scanner.EOF, "", kwic.Span{})
	}
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		pos := uint64(lms.scanner.TC)
		return scanner.MakeDefaultToken(scanner.EOF, "", kwic.Span{pos, pos})
	}
	tracer().Debugf("tok is %T | %v", tok, tok)
	token := tok.(*lexmachine.Token)
	from := uint64(token.TC)
	t := scanner.MakeDefaultToken(
		kwic.TokType(token.Type),
		string(token.Lexeme),
		kwic.Span{from, from + uint64(len(token.Lexeme))},
	)
	t.Val = token.Value
	return t
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
// The token's value is the word matched.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		w, err := word.New(string(m.Bytes))
		if err != nil {
			return nil, err
		}
		return s.Token(id, w, m), nil
	}
}
