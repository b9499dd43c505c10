//go:build !unix

package filesystem

import "os"

const (
	accessRead uint32 = 0o4
	accessExec uint32 = 0o1
)

func access(name string, mode uint32) bool {
	info, err := os.Stat(name)
	if err != nil {
		return false
	}
	if mode == accessRead {
		return true
	}
	return permitted(info.Mode(), mode)
}
