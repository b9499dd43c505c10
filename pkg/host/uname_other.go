//go:build !unix

package host

import "runtime"

// Without uname(2) the Go target is the best available answer.
func uname() (machine, sysname string, err error) {
	return runtime.GOARCH, runtime.GOOS, nil
}
