package hrx_test

import (
	"testing"

	hrx "github.com/kaj/hrx-get"
	"github.com/onsi/gomega"
)

const sample = "<===> b.txt\nbee\n<===> a.txt\nay\n<===> c/d.txt\ncee dee\n"

// TestNames ensures that enumeration is lexicographic regardless of the
// order entries appear in the source buffer.
func TestNames(t *testing.T) {
	a := parseOrSkip(t, sample)
	g := gomega.NewGomegaWithT(t)
	g.Expect(a.Names()).To(gomega.Equal([]string{"a.txt", "b.txt", "c/d.txt"}))
}

// TestGetAbsent ensures that looking up a missing name is a normal absent
// result, not an error or a panic.
func TestGetAbsent(t *testing.T) {
	a := parseOrSkip(t, sample)
	content, ok := a.Get("nope.txt")
	if ok {
		t.Errorf("Get() reported a missing entry as present")
	}
	if content != "" {
		t.Errorf("Get() returned content %q for a missing entry", content)
	}
}

// TestHas ensures that Has agrees with Get for present and absent names.
func TestHas(t *testing.T) {
	a := parseOrSkip(t, sample)
	g := gomega.NewGomegaWithT(t)
	g.Expect(a.Has("a.txt")).To(gomega.BeTrue())
	g.Expect(a.Has("A.TXT")).To(gomega.BeFalse())
	g.Expect(a.Has("c/d.txt")).To(gomega.BeTrue())
	g.Expect(a.Has("c/d.txt/")).To(gomega.BeFalse())
}

// TestEntries ensures that iteration visits every entry in name order, that
// an exhausted iterator stays exhausted, and that a fresh iterator restarts
// from the beginning.
func TestEntries(t *testing.T) {
	a := parseOrSkip(t, sample)
	g := gomega.NewGomegaWithT(t)
	want := []hrx.Entry{
		{Name: "a.txt", Content: "ay\n"},
		{Name: "b.txt", Content: "bee\n"},
		{Name: "c/d.txt", Content: "cee dee\n"},
	}
	it := a.Entries()
	var got []hrx.Entry
	for entry, ok := it.Next(); ok; entry, ok = it.Next() {
		got = append(got, entry)
	}
	g.Expect(got).To(gomega.Equal(want))
	if _, ok := it.Next(); ok {
		t.Errorf("Exhausted iterator produced another entry")
	}
	restarted := a.Entries()
	first, ok := restarted.Next()
	g.Expect(ok).To(gomega.BeTrue())
	g.Expect(first).To(gomega.Equal(want[0]))
}

// TestNamesIsACopy ensures that mutating the slice returned by Names does
// not affect the archive.
func TestNamesIsACopy(t *testing.T) {
	a := parseOrSkip(t, sample)
	names := a.Names()
	names[0] = "mutated"
	g := gomega.NewGomegaWithT(t)
	g.Expect(a.Names()[0]).To(gomega.Equal("a.txt"))
}
