//go:build unix

package host

import "golang.org/x/sys/unix"

func uname() (machine, sysname string, err error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return "", "", err
	}
	return unix.ByteSliceToString(u.Machine[:]), unix.ByteSliceToString(u.Sysname[:]), nil
}
