package index

import (
	"strings"

	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/kwic/word"
)

// Line is the sequence of words of an input line, in input order.
type Line []word.Word

// Rotations returns the cyclic left-rotations of l. Rotation k starts with
// word k and wraps around. An empty line has no rotations.
func (l Line) Rotations(lineNo int) []Rotation {
	rots := make([]Rotation, len(l))
	for k := range l {
		words := make([]word.Word, 0, len(l))
		words = append(words, l[k:]...)
		words = append(words, l[:k]...)
		rots[k] = Rotation{Words: words, LineNo: lineNo, Offset: k}
	}
	return rots
}

func (l Line) String() string {
	return joinWords(l)
}

// Rotation is an entry of a KWIC index: a line's words, starting at Offset.
type Rotation struct {
	Words  []word.Word
	LineNo int // input line this rotation stems from, starting at 1
	Offset int // index of the first word within its line
}

// Keyword is the first word of a rotation, i.e. the word this entry is sorted by.
func (r Rotation) Keyword() word.Word {
	if len(r.Words) == 0 {
		return word.Word{}
	}
	return r.Words[0]
}

func (r Rotation) String() string {
	return joinWords(r.Words)
}

// compareRotations is a utils.Comparator for rotations.
// Rotations are ordered by their words, ignoring case. Entries differing in
// case only are ordered by their spelling, then by input position.
func compareRotations(a, b interface{}) int {
	r1, r2 := a.(Rotation), b.(Rotation)
	if c := word.CompareSeq(r1.Words, r2.Words); c != 0 {
		return c
	}
	for i := range r1.Words { // same length, as CompareSeq reported equality
		if c := strings.Compare(r1.Words[i].String(), r2.Words[i].String()); c != 0 {
			return c
		}
	}
	if c := utils.IntComparator(r1.LineNo, r2.LineNo); c != 0 {
		return c
	}
	return utils.IntComparator(r1.Offset, r2.Offset)
}

var _ utils.Comparator = compareRotations

func compareWords(a, b interface{}) int {
	return word.Compare(a.(word.Word), b.(word.Word))
}

func joinWords(words []word.Word) string {
	var b strings.Builder
	for i, w := range words {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(w.String())
	}
	return b.String()
}
