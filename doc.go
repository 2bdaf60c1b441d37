// Package hrx implements reading of Human Readable Archive (.hrx) data.
// An hrx buffer packs any number of named text files (and optional comments)
// into a single document, delimited by a per-archive boundary marker such as
// "<===>".
// The `Archive` type provides a simple in-memory store with functions to look
// up, enumerate, and iterate the archived files.
// The `Loader` type wraps a filesystem path and provides functions to read an
// archive's contents from that path.
package hrx
