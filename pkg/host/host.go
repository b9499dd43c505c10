// Package host determines the platform triple of the machine running the
// configure step.
package host

import (
	"runtime"
	"strings"
	"sync"

	"github.com/arthur-debert/bsconf/pkg/errors"
)

// Vendor is the middle component of detected triples. It names the
// toolchain family that built this binary.
var Vendor = vendorFor(runtime.Compiler)

func vendorFor(compiler string) string {
	if compiler == "gccgo" {
		return "gnu"
	}
	return "unknown"
}

// Host describes the running machine.
type Host struct {
	Machine string
	Vendor  string
	Sysname string
}

// New lowercases machine and sysname and fills in the compiled-in vendor.
func New(machine, sysname string) Host {
	return Host{
		Machine: strings.ToLower(machine),
		Vendor:  Vendor,
		Sysname: strings.ToLower(sysname),
	}
}

// Triple returns machine-vendor-sysname.
func (h Host) Triple() string {
	return h.Machine + "-" + h.Vendor + "-" + h.Sysname
}

// Is reports whether the sysname starts with any of names, so "sun"
// matches sunos.
func (h Host) Is(names ...string) bool {
	for _, n := range names {
		if n != "" && strings.HasPrefix(h.Sysname, n) {
			return true
		}
	}
	return false
}

// Detect queries the operating system.
func Detect() (Host, error) {
	machine, sysname, err := uname()
	if err != nil {
		return Host{}, errors.Wrap(err, errors.ErrHostDetect, "uname")
	}
	return New(machine, sysname), nil
}

// System detects the host at most once and caches the result. It
// satisfies vars.HostDetector.
type System struct {
	once sync.Once
	host Host
	err  error
}

// Host returns the detected host.
func (s *System) Host() (Host, error) {
	s.once.Do(func() {
		s.host, s.err = Detect()
	})
	return s.host, s.err
}

// Triple returns the detected triple.
func (s *System) Triple() (string, error) {
	h, err := s.Host()
	if err != nil {
		return "", err
	}
	return h.Triple(), nil
}
