package bsconf

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/arthur-debert/bsconf/pkg/vars"
)

// noValue marks a bare --name given without =value.
const noValue = "(unset)"

// overrideValue stores one installation variable flag in the shared
// overrides map. A bare flag or an empty value leaves the variable to its
// default.
type overrideValue struct {
	overrides vars.Overrides
	v         vars.Variable
}

func (o *overrideValue) Set(s string) error {
	if s == noValue || s == "" {
		delete(o.overrides, o.v)
		return nil
	}
	o.overrides[o.v] = s
	return nil
}

func (o *overrideValue) String() string {
	if o.overrides == nil {
		return ""
	}
	return o.overrides[o.v]
}

func (o *overrideValue) Type() string { return "dir" }

// addVariableFlags registers --prefix, --exec-prefix, ... on fs.
func addVariableFlags(fs *pflag.FlagSet, overrides vars.Overrides) {
	for _, v := range vars.All() {
		fs.Var(&overrideValue{overrides: overrides, v: v}, v.FlagName(), variableUsage(v))
		fs.Lookup(v.FlagName()).NoOptDefVal = noValue
	}
}

// normalizeFlagName accepts --exec_prefix for --exec-prefix.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func variableUsage(v vars.Variable) string {
	switch v {
	case vars.Prefix:
		return "install architecture-independent files in `PREFIX` (default " + vars.DefaultPrefix + ")"
	case vars.ExecPrefix:
		return "install architecture-dependent files in `EPREFIX` (default PREFIX)"
	case vars.OldIncludeDir:
		return "C header files for non-gcc in `DIR` (default " + vars.DefaultOldIncludeDir + ")"
	case vars.Build:
		return "configure for building on `BUILD` (default HOST)"
	case vars.Host:
		return "cross-compile to build programs to run on `HOST` (default detected)"
	}
	for _, rule := range vars.DefaultRules {
		if rule.Target == v {
			root := "PREFIX"
			if rule.Root == vars.ExecPrefix {
				root = "EPREFIX"
			}
			return usageNouns[v] + " in `DIR` (default " + root + rule.Suffix + ")"
		}
	}
	return "set " + v.Name()
}

var usageNouns = map[vars.Variable]string{
	vars.BinDir:         "user executables",
	vars.SBinDir:        "system admin executables",
	vars.LibExecDir:     "program executables",
	vars.DataDir:        "read-only architecture-independent data",
	vars.SysConfDir:     "read-only single-machine data",
	vars.SharedStateDir: "modifiable architecture-independent data",
	vars.LocalStateDir:  "modifiable single-machine data",
	vars.LibDir:         "object code libraries",
	vars.IncludeDir:     "C header files",
	vars.InfoDir:        "info documentation",
	vars.ManDir:         "man documentation",
}
