package filesystem

import (
	"github.com/spf13/afero"
)

// dryRunFS reads through to the real filesystem but keeps every created
// file in memory. Probes go to base so results match a real run.
type dryRunFS struct {
	aferoFS
	base FS
}

// NewDryRun wraps base so that Create never touches the disk.
func NewDryRun(base FS) FS {
	layer := afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(afero.NewOsFs()), afero.NewMemMapFs())
	return &dryRunFS{aferoFS: aferoFS{fs: layer}, base: base}
}

func (d *dryRunFS) Readable(name string) bool {
	return d.base.Readable(name)
}

func (d *dryRunFS) Executable(name string) bool {
	return d.base.Executable(name)
}
