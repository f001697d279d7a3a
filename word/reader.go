package word

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/kwic"
)

// --- Word reader -----------------------------------------------------------

// Reader extracts words from a character input. Create one with NewReader.
//
// Once a reader has hit the end of its input, or the input failed, every
// further extraction fails with the same error.
type Reader struct {
	reader io.RuneScanner
	pos    uint64    // byte offset of the next unread rune
	span   kwic.Span // span of the last word extracted
	err    error     // sticky error state
	buf    strings.Builder
}

// NewReader creates a word reader for an input. If r is not an io.RuneScanner,
// it will be buffered.
func NewReader(r io.Reader) *Reader {
	rs, ok := r.(io.RuneScanner)
	if !ok {
		rs = bufio.NewReader(r)
	}
	return &Reader{reader: rs}
}

// Next extracts the next word. Leading runes which are not letters are skipped,
// then letters are collected up to the first non-letter, which remains unread.
//
// If the input is exhausted before a letter has been found, Next returns
// ErrEndOfInput. If the input cannot be read, the error returned wraps the
// I/O error.
func (r *Reader) Next() (Word, error) {
	if r.err != nil {
		return Word{}, r.err
	}
	ch, sz, err := r.reader.ReadRune()
	for err == nil && !isLetter(ch) {
		r.pos += uint64(sz)
		ch, sz, err = r.reader.ReadRune()
	}
	if err != nil {
		return Word{}, r.fail(err)
	}
	start := r.pos
	r.buf.Reset()
	for err == nil && isLetter(ch) {
		r.buf.WriteRune(ch)
		r.pos += uint64(sz)
		ch, sz, err = r.reader.ReadRune()
	}
	if err == nil {
		if uerr := r.reader.UnreadRune(); uerr != nil {
			r.fail(uerr)
		}
	} else {
		r.fail(err) // the word is complete anyway; fail on the next call
	}
	w := Word{text: r.buf.String()}
	r.span = kwic.Span{start, r.pos}
	tracer().Debugf("word %q at %s", w.text, r.span)
	return w, nil
}

// ReadInto extracts the next word and stores it in w. If extraction fails, w is
// left unchanged and the error from Next is returned.
func (r *Reader) ReadInto(w *Word) error {
	next, err := r.Next()
	if err != nil {
		return err
	}
	*w = next
	return nil
}

// Span returns the byte positions of the word extracted last.
func (r *Reader) Span() kwic.Span {
	return r.span
}

// Err returns the error state of the reader, or nil if more words may be available.
func (r *Reader) Err() error {
	return r.err
}

// ReadAll extracts words until the input is exhausted. End of input is not
// reported as an error.
func (r *Reader) ReadAll() ([]Word, error) {
	var words []Word
	for {
		w, err := r.Next()
		if errors.Is(err, ErrEndOfInput) {
			return words, nil
		} else if err != nil {
			return words, err
		}
		words = append(words, w)
	}
}

func (r *Reader) fail(err error) error {
	if err == io.EOF {
		tracer().Debugf("word reader reached end of input")
		r.err = ErrEndOfInput
	} else {
		tracer().Errorf("word reader failed: %v", err)
		r.err = fmt.Errorf("word reader cannot read input: %w", err)
	}
	return r.err
}
