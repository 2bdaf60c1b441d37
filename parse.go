package hrx

import (
	"strings"

	errors "gopkg.in/src-d/go-errors.v1"
)

// ErrNoBoundary is returned by Parse when the input does not begin with a
// boundary marker of the shape "<", one or more "=", ">".
var ErrNoBoundary = errors.NewKind("no archive boundary found")

// ErrInvalidItem is returned by Parse when a segment of the input is neither
// a comment nor a named entry. It carries the offending segment's text.
var ErrInvalidItem = errors.NewKind("invalid archive item: %q")

// Parse reads hrx data from an in-memory buffer.
//
// The buffer must begin with a boundary marker; every later occurrence of a
// newline followed by that same marker delimits an item. Items beginning
// with a single space are entries, either " name\ncontent" or " name" alone
// (a directory marker or empty file). Empty items and items beginning with a
// newline are comments and are discarded. When a name repeats, the last
// entry in the buffer wins.
//
// An entry's content is exactly the bytes between its header line and the
// next boundary, so content that ends at a boundary keeps its trailing
// newline.
func Parse(data string) (*Archive, error) {
	marker, ok := findBoundary(data)
	if !ok {
		return nil, ErrNoBoundary.New()
	}
	files := make(map[string]string)
	items := strings.Split(data[len(marker):], "\n"+marker)
	for i, item := range items {
		switch {
		case item == "" || item[0] == '\n':
			// comment, ignore
		case item[0] == ' ':
			name, content := splitEntry(item[1:], i == len(items)-1)
			files[name] = content
		default:
			return nil, ErrInvalidItem.New(item)
		}
	}
	return newArchive(files), nil
}

// splitEntry separates an entry item, with its leading space already
// removed, into name and content. Splitting consumed the newline that
// preceded the next boundary, so that newline is restored for every
// non-final entry with a body. A name-only item is unaffected: the consumed
// newline there terminated the header line, not content.
func splitEntry(item string, last bool) (name, content string) {
	nl := strings.IndexByte(item, '\n')
	if nl < 0 {
		return item, ""
	}
	name = item[:nl]
	content = item[nl+1:]
	if !last {
		content += "\n"
	}
	return name, content
}

// findBoundary returns the boundary marker at the very start of the buffer.
// Position 0 must hold "<"; each following byte must be "=" until a ">"
// closes the marker. Any other byte, or running out of input, fails the
// scan.
func findBoundary(data string) (string, bool) {
	for i := 0; i < len(data); i++ {
		switch {
		case i == 0:
			if data[0] != '<' {
				return "", false
			}
		case data[i] == '=':
		case data[i] == '>':
			return data[:i+1], true
		default:
			return "", false
		}
	}
	return "", false
}
