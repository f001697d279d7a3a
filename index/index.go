package index

import (
	"bufio"
	"fmt"
	"io"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/kwic/word"
)

// Index is a KWIC index, i.e. the rotations of all input lines in sorted order.
type Index struct {
	lines     []Line
	rotations *arraylist.List
}

func newIndex() *Index {
	return &Index{rotations: arraylist.New()}
}

// add appends a line's rotations to the index, without sorting.
func (ix *Index) add(line Line) {
	ix.lines = append(ix.lines, line)
	for _, rot := range line.Rotations(len(ix.lines)) {
		ix.rotations.Add(rot)
	}
}

// Sort sorts the rotations of the index. Sorting is idempotent.
func (ix *Index) Sort() {
	ix.rotations.Sort(compareRotations)
	tracer().Debugf("sorted %d rotations", ix.rotations.Size())
}

// Len returns the number of rotations.
func (ix *Index) Len() int {
	return ix.rotations.Size()
}

// Lines returns the non-empty input lines, in input order.
func (ix *Index) Lines() []Line {
	return ix.lines
}

// Rotations returns the entries of the index in sorted order.
func (ix *Index) Rotations() []Rotation {
	rots := make([]Rotation, 0, ix.rotations.Size())
	it := ix.rotations.Iterator()
	for it.Next() {
		rots = append(rots, it.Value().(Rotation))
	}
	return rots
}

// Keywords returns the distinct words of the index, ignoring case, in sorted order.
// For words differing in case only, a single spelling is reported.
func (ix *Index) Keywords() []word.Word {
	set := treeset.NewWith(compareWords)
	for _, line := range ix.lines {
		for _, w := range line {
			set.Add(w)
		}
	}
	keywords := make([]word.Word, 0, set.Size())
	for _, v := range set.Values() {
		keywords = append(keywords, v.(word.Word))
	}
	return keywords
}

// WriteTo writes the index to w, one rotation per line. Every word of a
// rotation is followed by a single space.
func (ix *Index) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	it := ix.rotations.Iterator()
	for it.Next() {
		for _, wd := range it.Value().(Rotation).Words {
			k, err := fmt.Fprintf(bw, "%s ", wd)
			n += int64(k)
			if err != nil {
				return n, err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}
	return n, bw.Flush()
}

type digestable struct {
	Rotations []string
}

// Digest returns a fingerprint of the index' entries, in their current order.
// Two indexes with equal digests will produce the same output.
func (ix *Index) Digest() (string, error) {
	d := digestable{Rotations: make([]string, 0, ix.rotations.Size())}
	it := ix.rotations.Iterator()
	for it.Next() {
		d.Rotations = append(d.Rotations, it.Value().(Rotation).String())
	}
	return structhash.Hash(d, 1)
}
