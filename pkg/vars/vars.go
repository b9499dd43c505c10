package vars

import (
	"strings"
)

// Variable identifies one of the installation-path variables. The order
// of the constants is the order in which they are substituted.
type Variable int

const (
	Prefix Variable = iota
	ExecPrefix
	BinDir
	SBinDir
	LibExecDir
	DataDir
	SysConfDir
	SharedStateDir
	LocalStateDir
	LibDir
	IncludeDir
	OldIncludeDir
	InfoDir
	ManDir
	Build
	Host

	// Count is the number of variables.
	Count int = iota
)

var names = [Count]string{
	"prefix",
	"exec_prefix",
	"bindir",
	"sbindir",
	"libexecdir",
	"datadir",
	"sysconfdir",
	"sharedstatedir",
	"localstatedir",
	"libdir",
	"includedir",
	"oldincludedir",
	"infodir",
	"mandir",
	"build",
	"host",
}

// All returns every variable in substitution order.
func All() []Variable {
	all := make([]Variable, Count)
	for i := range all {
		all[i] = Variable(i)
	}
	return all
}

// Name returns the canonical name, which is also the token body.
func (v Variable) Name() string {
	if v < 0 || int(v) >= Count {
		return ""
	}
	return names[v]
}

// FlagName returns the command-line spelling (exec-prefix).
func (v Variable) FlagName() string {
	return strings.ReplaceAll(v.Name(), "_", "-")
}

func (v Variable) String() string { return v.Name() }

// Lookup finds a variable by name. Dashes and underscores are
// interchangeable, so exec-prefix and exec_prefix both match.
func Lookup(name string) (Variable, bool) {
	name = strings.ReplaceAll(name, "-", "_")
	for i, n := range names {
		if n == name {
			return Variable(i), true
		}
	}
	return 0, false
}

// isRoot reports whether v may be intentionally empty after resolution.
func (v Variable) isRoot() bool {
	return v == Prefix || v == ExecPrefix
}
