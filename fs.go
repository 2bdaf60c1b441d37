package hrx

import (
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
)

// FS returns a read-only filesystem view of the archive. Entries whose name
// ends in "/" become directories, every other entry is a regular file, and
// intermediate directories are synthesized from entry paths. The view reads
// the immutable archive, so it is safe for concurrent use.
func (a *Archive) FS() fs.FS {
	return archiveFS{a}
}

type archiveFS struct {
	a *Archive
}

func (fsys archiveFS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	if content, ok := fsys.a.files[name]; ok {
		info := fileInfo{name: path.Base(name), size: int64(len(content)), mode: 0444}
		return &archiveFile{info: info, content: content}, nil
	}
	entries, ok := fsys.dirEntries(name)
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	info := fileInfo{name: path.Base(name), mode: fs.ModeDir | 0555}
	return &archiveDir{info: info, entries: entries}, nil
}

// dirEntries lists the immediate children of the named directory in sorted
// order. The second result is false when nothing in the archive puts a
// directory at that path.
func (fsys archiveFS) dirEntries(name string) ([]fs.DirEntry, bool) {
	prefix := ""
	if name != "." {
		prefix = name + "/"
	}
	// An explicit "name/" entry marks the directory even when empty.
	_, found := fsys.a.files[prefix]
	if name == "." {
		found = true
	}
	kind := make(map[string]bool) // child base name -> is directory
	for _, full := range fsys.a.names {
		if full == prefix || !strings.HasPrefix(full, prefix) {
			continue
		}
		found = true
		rest := strings.TrimSuffix(full[len(prefix):], "/")
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			kind[rest[:i]] = true
		} else if strings.HasSuffix(full, "/") {
			kind[rest] = true
		} else if _, seen := kind[rest]; !seen {
			kind[rest] = false
		}
	}
	if !found {
		return nil, false
	}
	bases := make([]string, 0, len(kind))
	for base := range kind {
		bases = append(bases, base)
	}
	sort.Strings(bases)
	entries := make([]fs.DirEntry, len(bases))
	for i, base := range bases {
		if kind[base] {
			entries[i] = fileInfo{name: base, mode: fs.ModeDir | 0555}
		} else {
			content := fsys.a.files[prefix+base]
			entries[i] = fileInfo{name: base, size: int64(len(content)), mode: 0444}
		}
	}
	return entries, true
}

type archiveFile struct {
	info    fileInfo
	content string
	offset  int
}

func (f *archiveFile) Stat() (fs.FileInfo, error) { return f.info, nil }

func (f *archiveFile) Read(b []byte) (int, error) {
	if f.offset >= len(f.content) {
		return 0, io.EOF
	}
	n := copy(b, f.content[f.offset:])
	f.offset += n
	return n, nil
}

func (f *archiveFile) Close() error { return nil }

type archiveDir struct {
	info    fileInfo
	entries []fs.DirEntry
	offset  int
}

func (d *archiveDir) Stat() (fs.FileInfo, error) { return d.info, nil }

func (d *archiveDir) Read([]byte) (int, error) {
	return 0, &fs.PathError{Op: "read", Path: d.info.name, Err: fs.ErrInvalid}
}

func (d *archiveDir) Close() error { return nil }

func (d *archiveDir) ReadDir(n int) ([]fs.DirEntry, error) {
	remaining := d.entries[d.offset:]
	if n <= 0 {
		d.offset = len(d.entries)
		return remaining, nil
	}
	if len(remaining) == 0 {
		return nil, io.EOF
	}
	if n > len(remaining) {
		n = len(remaining)
	}
	d.offset += n
	return remaining[:n], nil
}

// fileInfo serves as both fs.FileInfo and fs.DirEntry for archive files and
// synthesized directories.
type fileInfo struct {
	name string
	size int64
	mode fs.FileMode
}

func (i fileInfo) Name() string               { return i.name }
func (i fileInfo) Size() int64                { return i.size }
func (i fileInfo) Mode() fs.FileMode          { return i.mode }
func (i fileInfo) ModTime() time.Time         { return time.Time{} }
func (i fileInfo) IsDir() bool                { return i.mode.IsDir() }
func (i fileInfo) Sys() any                   { return nil }
func (i fileInfo) Type() fs.FileMode          { return i.mode.Type() }
func (i fileInfo) Info() (fs.FileInfo, error) { return i, nil }
