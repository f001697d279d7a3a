package index

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/kwic/scanner"
	"github.com/npillmayer/kwic/scanner/lexmach"
	"github.com/npillmayer/kwic/word"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var generatorTests = []struct {
	name   string
	input  string
	output string
}{
	{name: "empty input", input: "", output: ""},
	{name: "single word", input: "Test", output: "Test \n"},
	{name: "multiple words", input: "this is a test", output: "a test this is \n" +
		"is a test this \n" +
		"test this is a \n" +
		"this is a test \n"},
	{name: "two lines", input: "this is a test\nthis is another test", output: "a test this is \n" +
		"another test this is \n" +
		"is a test this \n" +
		"is another test this \n" +
		"test this is a \n" +
		"test this is another \n" +
		"this is a test \n" +
		"this is another test \n"},
	{name: "multiple lines", input: "a b c d\na a b\nb b c", output: "a a b \n" +
		"a b a \n" +
		"a b c d \n" +
		"b a a \n" +
		"b b c \n" +
		"b c b \n" +
		"b c d a \n" +
		"c b b \n" +
		"c d a b \n" +
		"d a b c \n"},
	{name: "no words", input: "123 456", output: ""},
	{name: "empty lines", input: "\n\nGo\n\n", output: "Go \n"},
	{name: "mixed case", input: "ADA java\nbasic", output: "ADA java \n" +
		"basic \n" +
		"java ADA \n"},
	{name: "punctuation", input: "PL/SQL, COBOL!\n", output: "COBOL PL SQL \n" +
		"PL SQL COBOL \n" +
		"SQL COBOL PL \n"},
	{name: "case ties", input: "test\nTest", output: "Test \ntest \n"},
}

func TestGenerate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kwic.index")
	defer teardown()
	//
	for _, test := range generatorTests {
		var out bytes.Buffer
		if err := Generate(strings.NewReader(test.input), &out); err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		if out.String() != test.output {
			t.Errorf("%s: expected\n%q\nhave\n%q", test.name, test.output, out.String())
		}
	}
}

func TestGenerateWithLexmachine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kwic.index")
	defer teardown()
	//
	LM, err := lexmach.NewLMAdapter()
	if err != nil {
		t.Fatal(err)
	}
	opt := WithTokenizer(func(line string) scanner.Tokenizer {
		return LM.Tokenizer(line)
	})
	for _, test := range generatorTests {
		var out bytes.Buffer
		if err := Generate(strings.NewReader(test.input), &out, opt); err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		if out.String() != test.output {
			t.Errorf("%s: expected\n%q\nhave\n%q", test.name, test.output, out.String())
		}
	}
}

func TestRotations(t *testing.T) {
	line := Line{word.MustNew("a"), word.MustNew("b"), word.MustNew("c")}
	rots := line.Rotations(7)
	expected := []string{"a b c", "b c a", "c a b"}
	if len(rots) != len(expected) {
		t.Fatalf("expected %d rotations, have %d", len(expected), len(rots))
	}
	for i, rot := range rots {
		if rot.String() != expected[i] {
			t.Errorf("rotation %d: expected %q, have %q", i, expected[i], rot.String())
		}
		if rot.LineNo != 7 || rot.Offset != i {
			t.Errorf("rotation %d: unexpected position %d/%d", i, rot.LineNo, rot.Offset)
		}
		if !word.Equal(rot.Keyword(), line[i]) {
			t.Errorf("rotation %d: expected keyword %s, have %s", i, line[i], rot.Keyword())
		}
	}
	if len(Line{}.Rotations(1)) != 0 {
		t.Errorf("expected empty line to have no rotations")
	}
}

func TestSortIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kwic.index")
	defer teardown()
	//
	ix, err := Build(strings.NewReader("a b c d\na a b\nb b c\nB b C"))
	if err != nil {
		t.Fatal(err)
	}
	if ix.Len() != 13 {
		t.Errorf("expected 13 rotations, have %d", ix.Len())
	}
	d1, err := ix.Digest()
	if err != nil {
		t.Fatal(err)
	}
	ix.Sort()
	d2, _ := ix.Digest()
	if d1 != d2 {
		t.Errorf("expected digest to be unchanged after sorting twice")
	}
	rots := ix.Rotations()
	for i := 1; i < len(rots); i++ {
		if word.CompareSeq(rots[i-1].Words, rots[i].Words) > 0 {
			t.Errorf("rotations %d and %d are out of order", i-1, i)
		}
	}
}

func TestKeywords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kwic.index")
	defer teardown()
	//
	ix, err := Build(strings.NewReader("this is a test\nthis is another test"))
	if err != nil {
		t.Fatal(err)
	}
	var kw []string
	for _, w := range ix.Keywords() {
		kw = append(kw, w.String())
	}
	if strings.Join(kw, " ") != "a another is test this" {
		t.Errorf("unexpected keywords %v", kw)
	}
	if len(ix.Lines()) != 2 {
		t.Errorf("expected 2 lines, have %d", len(ix.Lines()))
	}
}

func TestMinWordLength(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kwic.index")
	defer teardown()
	//
	var out bytes.Buffer
	err := Generate(strings.NewReader("this is a test"), &out, WithMinWordLength(3))
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != "test this \nthis test \n" {
		t.Errorf("unexpected output %q", out.String())
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("network down")
}

func TestReadErrorPropagates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kwic.index")
	defer teardown()
	//
	var out bytes.Buffer
	if err := Generate(failingReader{}, &out); err == nil {
		t.Errorf("expected read error to propagate")
	}
}

func TestWriteToCountsBytes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kwic.index")
	defer teardown()
	//
	ix, _ := Build(strings.NewReader("this is a test"))
	var out bytes.Buffer
	n, err := ix.WriteTo(&out)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(out.Len()) {
		t.Errorf("expected WriteTo to report %d bytes, reported %d", out.Len(), n)
	}
}
