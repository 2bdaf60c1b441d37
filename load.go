package hrx

import (
	"io"
	"os"

	"github.com/pkg/errors"
	goerrors "gopkg.in/src-d/go-errors.v1"
)

// ErrReadFile is returned by Load when the archive file cannot be read. It
// carries the path and wraps the underlying I/O error.
var ErrReadFile = goerrors.NewKind("read archive %s")

// ErrParseFile is returned by Load when the archive file's contents do not
// parse. It carries the path and wraps the parse error, so ErrNoBoundary
// and ErrInvalidItem still match through the cause chain.
var ErrParseFile = goerrors.NewKind("parse archive %s")

// Opener transforms a path into a readable, closable file-like entity.
type Opener func(path string) (io.ReadCloser, error)

// OpenFile is an Opener that reads a file from disk.
func OpenFile(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Loader reads archives from a filesystem path. It performs no parsing
// itself; it only supplies bytes to Parse. The zero value is not usable,
// construct with NewLoader.
type Loader struct {
	path   string
	opener Opener
}

// NewLoader creates a Loader that will read archive data from the provided
// path.
func NewLoader(path string) (*Loader, error) {
	if path == "" {
		return nil, errors.New("path may not be the empty string")
	}
	return &Loader{path: path, opener: OpenFile}, nil
}

// SetOpener configures the Loader to open its path with the given Opener
// function.
func (l *Loader) SetOpener(o Opener) error {
	if o == nil {
		return errors.New("cannot set nil opener")
	}
	l.opener = o
	return nil
}

// Load reads the loader's path and parses its contents into an Archive.
// Read failures and parse failures are reported as distinct error kinds,
// both tagged with the path.
func (l *Loader) Load() (*Archive, error) {
	file, err := l.opener(l.path)
	if err != nil {
		return nil, ErrReadFile.Wrap(err, l.path)
	}
	if file == nil {
		return nil, ErrReadFile.Wrap(errors.New("opener returned no file"), l.path)
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, ErrReadFile.Wrap(err, l.path)
	}
	archive, err := Parse(string(data))
	if err != nil {
		return nil, ErrParseFile.Wrap(err, l.path)
	}
	return archive, nil
}

// Load reads and parses the archive at path using the default Opener.
func Load(path string) (*Archive, error) {
	loader, err := NewLoader(path)
	if err != nil {
		return nil, err
	}
	return loader.Load()
}
