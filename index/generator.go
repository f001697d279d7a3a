package index

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/kwic/scanner"
)

// TokenizerFactory creates a tokenizer for a single input line.
type TokenizerFactory func(line string) scanner.Tokenizer

// Generator builds KWIC indexes. The zero value is not usable; create one with
// NewGenerator. A generator holds no state between calls to Build.
type Generator struct {
	tokenizer TokenizerFactory
	minLength int
}

// Option configures a generator.
type Option func(g *Generator)

// WithTokenizer sets the tokenizer used to split lines into words.
// The default is scanner.Words.
func WithTokenizer(f TokenizerFactory) Option {
	return func(g *Generator) {
		if f != nil {
			g.tokenizer = f
		}
	}
}

// WithMinWordLength drops words with less than n letters from the input lines.
func WithMinWordLength(n int) Option {
	return func(g *Generator) {
		g.minLength = n
	}
}

// NewGenerator creates a generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		tokenizer: defaultTokenizer,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func defaultTokenizer(line string) scanner.Tokenizer {
	return scanner.Words("line", strings.NewReader(line))
}

// Generate reads lines from r and writes their KWIC index to w.
func Generate(r io.Reader, w io.Writer, opts ...Option) error {
	ix, err := NewGenerator(opts...).Build(r)
	if err != nil {
		return err
	}
	_, err = ix.WriteTo(w)
	return err
}

// Build reads lines from r and creates their sorted KWIC index.
func Build(r io.Reader, opts ...Option) (*Index, error) {
	return NewGenerator(opts...).Build(r)
}

// Build reads lines from r until end of input and creates their sorted KWIC
// index. A final line without a line terminator is processed as well.
// Read errors are returned to the caller.
func (g *Generator) Build(r io.Reader) (*Index, error) {
	ix := newIndex()
	br := bufio.NewReader(r)
	lineNo := 0
	for {
		text, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("cannot read input line %d: %w", lineNo+1, err)
		}
		if text != "" {
			lineNo++
			line, lerr := g.tokenize(strings.TrimSuffix(text, "\n"))
			if lerr != nil {
				return nil, fmt.Errorf("cannot tokenize input line %d: %w", lineNo, lerr)
			}
			tracer().Debugf("line %d has %d words", lineNo, len(line))
			if len(line) > 0 {
				ix.add(line)
			}
		}
		if err == io.EOF {
			break
		}
	}
	tracer().Infof("read %d lines, collected %d rotations", lineNo, ix.Len())
	ix.Sort()
	return ix, nil
}

func (g *Generator) tokenize(text string) (Line, error) {
	var tokerr error
	t := g.tokenizer(text)
	t.SetErrorHandler(func(e error) {
		if tokerr == nil {
			tokerr = e
		}
	})
	words := scanner.Collect(t, func(e error) {
		if tokerr == nil {
			tokerr = e
		}
	})
	if tokerr != nil {
		return nil, tokerr
	}
	if g.minLength <= 1 {
		return Line(words), nil
	}
	line := make(Line, 0, len(words))
	for _, w := range words {
		if w.Len() >= g.minLength {
			line = append(line, w)
		}
	}
	return line, nil
}
