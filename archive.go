package hrx

import "sort"

// Entry is a single named file within an archive.
type Entry struct {
	Name    string
	Content string
}

// Archive stores the parsed contents of a Human Readable Archive. It is
// immutable once constructed, so concurrent readers need no synchronization.
type Archive struct {
	files map[string]string
	names []string
}

// newArchive builds the immutable archive value from the parsed file map.
// The map is owned by the archive after this call.
func newArchive(files map[string]string) *Archive {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	return &Archive{files: files, names: names}
}

// Names returns the names of the archived files in lexicographic order.
func (a *Archive) Names() []string {
	names := make([]string, len(a.names))
	copy(names, a.names)
	return names
}

// Has reports whether the archive contains a file with the given name.
func (a *Archive) Has(name string) bool {
	_, ok := a.files[name]
	return ok
}

// Get returns the contents of the named file. The boolean result is false
// when no file with that exact name exists; a missing file is a normal
// outcome, not an error. Names are matched verbatim, with no normalization
// of case, separators, or dot segments.
func (a *Archive) Get(name string) (string, bool) {
	content, ok := a.files[name]
	return content, ok
}

// Entries returns an iterator over the archive's (name, content) pairs in
// lexicographic name order. Every call yields a fresh iterator, so
// iteration can be restarted at will.
func (a *Archive) Entries() *Entries {
	return &Entries{archive: a}
}

// Entries iterates over the files of an Archive in name order.
type Entries struct {
	archive *Archive
	pos     int
}

// Next returns the next entry. The boolean result is false once the
// iterator is exhausted.
func (e *Entries) Next() (Entry, bool) {
	if e.pos >= len(e.archive.names) {
		return Entry{}, false
	}
	name := e.archive.names[e.pos]
	e.pos++
	return Entry{Name: name, Content: e.archive.files[name]}, true
}
