package filesystem

import (
	"io"
	"io/fs"
)

// FS is the filesystem surface the configure run needs: whole-file
// streams for templates and outputs, and presence probes.
type FS interface {
	Open(name string) (io.ReadCloser, error)
	Create(name string) (io.WriteCloser, error)
	Stat(name string) (fs.FileInfo, error)

	// Readable reports whether name exists and may be opened for reading.
	Readable(name string) bool
	// Executable reports whether name is a non-directory the current user may execute.
	Executable(name string) bool
}
