// Package repository reads the line definitions consumed by the
// reservation engine: stations with cumulative fares, seat codes and
// previously reserved tickets.  Text sources are comma separated files;
// tickets may also come from a MySQL table.  Sources are read once at
// startup and never written back.
package repository

import "errors"

// ErrMalformedRecord is returned when a source line cannot be parsed.
// Loaders wrap it with the file name and line number; callers treat it
// as fatal at startup.
var ErrMalformedRecord = errors.New("malformed record")
