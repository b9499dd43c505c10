package filesystem

import (
	"io"
	"io/fs"

	"github.com/spf13/afero"
)

// aferoFS implements FS using afero. Probes look at permission bits
// since there is no kernel to ask.
type aferoFS struct {
	fs afero.Fs
}

// NewAferoFS creates a new afero filesystem implementation
func NewAferoFS(fs afero.Fs) FS {
	return &aferoFS{fs: fs}
}

func (a *aferoFS) Open(name string) (io.ReadCloser, error) {
	info, err := a.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	return a.fs.Open(name)
}

func (a *aferoFS) Create(name string) (io.WriteCloser, error) {
	return a.fs.Create(name)
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFS) Readable(name string) bool {
	info, err := a.fs.Stat(name)
	if err != nil {
		return false
	}
	return permitted(info.Mode(), accessRead)
}

func (a *aferoFS) Executable(name string) bool {
	info, err := a.fs.Stat(name)
	if err != nil || info.IsDir() {
		return false
	}
	return permitted(info.Mode(), accessExec)
}

// permitted reports whether any of user, group or other holds the bit.
func permitted(mode fs.FileMode, bit uint32) bool {
	perm := uint32(mode.Perm())
	return perm&(bit<<6|bit<<3|bit) != 0
}
