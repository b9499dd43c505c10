// Package programs finds the external tools a build needs on the search
// path. Only executability is checked; nothing is run.
package programs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/bsconf/pkg/logging"
)

// InstallProgram is the one program subject to the directory block list
// and always substituted by its discovered path.
const InstallProgram = "install"

// badInstallDirs hold install programs that are not BSD compatible.
var badInstallDirs = []string{
	"/etc/",
	"/usr/sbin/",
	"/c/",
	"/C/",
	"/usr/etc/",
	"/sbin/",
	"/usr/ucb/",
	"/usr/afsws/bin/",
}

// Entry is one program to look for.
type Entry struct {
	// Token is the template marker body, e.g. CC for @CC@.
	Token string `koanf:"token" toml:"token" yaml:"token"`
	// Name is the executable searched for.
	Name string `koanf:"name" toml:"name" yaml:"name"`
	// Found is substituted when the program exists. Empty means the
	// discovered path.
	Found string `koanf:"found" toml:"found" yaml:"found"`
	// NotFound is substituted when the search fails.
	NotFound string `koanf:"not_found" toml:"not_found" yaml:"not_found"`
}

// Resolved is the outcome of a search.
type Resolved struct {
	Entry
	// Path is the first executable match, empty when not found.
	Path string
	// Value is the substitution text.
	Value string
}

// IsFound reports whether the program exists on the search path.
func (r Resolved) IsFound() bool { return r.Path != "" }

// Prober tests candidate paths.
type Prober interface {
	Executable(path string) bool
}

// Locate resolves every entry against searchPath, a list of directories
// joined by the OS list separator. Directories are tried in order and the
// first executable candidate wins.
func Locate(entries []Entry, searchPath string, prober Prober) []Resolved {
	logger := logging.GetLogger("programs")
	dirs := filepath.SplitList(searchPath)

	resolved := make([]Resolved, 0, len(entries))
	for _, e := range entries {
		r := Resolved{Entry: e, Path: find(e.Name, dirs, prober)}
		r.Value = value(r)
		resolved = append(resolved, r)

		logger.Debug().
			Str("program", e.Name).
			Str("path", r.Path).
			Str("value", r.Value).
			Msg("checked for program")
	}
	return resolved
}

// LocateOnPath uses the PATH of the current process.
func LocateOnPath(entries []Entry, prober Prober) []Resolved {
	return Locate(entries, os.Getenv("PATH"), prober)
}

func find(name string, dirs []string, prober Prober) string {
	if name == "" {
		return ""
	}
	for _, dir := range dirs {
		if name == InstallProgram && isBadInstallDir(dir) {
			continue
		}
		candidate := dir + "/" + name
		if prober.Executable(candidate) {
			return candidate
		}
	}
	return ""
}

func value(r Resolved) string {
	switch {
	case !r.IsFound():
		return r.NotFound
	case r.Name == InstallProgram || r.Found == "":
		return r.Path
	default:
		return r.Found
	}
}

func isBadInstallDir(dir string) bool {
	dir += "/"
	for _, bad := range badInstallDirs {
		if strings.HasPrefix(dir, bad) {
			return true
		}
	}
	return false
}
