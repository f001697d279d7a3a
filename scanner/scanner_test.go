package scanner

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/kwic/word"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var inputStrings = []string{
	"Test",
	"this is a test",
	"PL/SQL",
	"compl33tely ~ weird !!??!! 4matted in_put",
	"123 456",
	"",
}

var tokenCounts = []int{1, 4, 2, 6, 0, 0}

func TestWordTokenizer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kwic.scanner")
	defer teardown()
	//
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		reader := strings.NewReader(input)
		name := fmt.Sprintf("input #%d", i)
		scanner := Words(name, reader)
		token := scanner.NextToken()
		count := 0
		for token.TokType() != EOF {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			if _, ok := token.Value().(word.Word); !ok {
				t.Errorf("expected token value to be a word, is %T", token.Value())
			}
			token = scanner.NextToken()
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestTokenSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kwic.scanner")
	defer teardown()
	//
	scanner := Words("spans", strings.NewReader("PL/SQL"))
	pl := scanner.NextToken()
	sql := scanner.NextToken()
	if pl.Span().From() != 0 || pl.Span().To() != 2 {
		t.Errorf("expected span of PL to be (0…2), is %s", pl.Span())
	}
	if sql.Span().From() != 3 || sql.Span().To() != 6 {
		t.Errorf("expected span of SQL to be (3…6), is %s", sql.Span())
	}
	if eof := scanner.NextToken(); eof.TokType() != EOF {
		t.Errorf("expected EOF, have %q", eof.Lexeme())
	}
}

func TestSkipShortWords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kwic.scanner")
	defer teardown()
	//
	scanner := Words("short", strings.NewReader("this is a test"), SkipShortWords(3))
	words := Collect(scanner, nil)
	if len(words) != 2 || words[0].String() != "this" || words[1].String() != "test" {
		t.Errorf("expected [this test], have %v", words)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk unplugged")
}

func TestErrorHandler(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kwic.scanner")
	defer teardown()
	//
	var reported error
	scanner := Words("broken", failingReader{})
	scanner.SetErrorHandler(func(e error) {
		reported = e
	})
	if token := scanner.NextToken(); token.TokType() != EOF {
		t.Errorf("expected EOF for broken input")
	}
	if reported == nil {
		t.Errorf("expected read error to be reported")
	}
	if scanner.Err() == nil {
		t.Errorf("expected tokenizer to remember the read error")
	}
}

func TestLexeme(t *testing.T) {
	token := MakeDefaultToken(WordTok, "Go", [2]uint64{0, 2})
	for i, x := range []interface{}{"Go", []byte("Go"), token} {
		if Lexeme(x) != "Go" {
			t.Errorf("test %d: expected lexeme Go, have %q", i, Lexeme(x))
		}
	}
}
