package vars

import (
	"github.com/arthur-debert/bsconf/pkg/logging"
)

const (
	// DefaultPrefix is used when no prefix is given.
	DefaultPrefix = "/usr/local"
	// DefaultOldIncludeDir is independent of the prefixes.
	DefaultOldIncludeDir = "/usr/include"

	rootDir = "/"
)

// DefaultRule derives Target from Root plus a literal suffix.
type DefaultRule struct {
	Target Variable
	Root   Variable
	Suffix string
}

// DefaultRules lists the directory defaults. Every root is prefix or
// exec_prefix, both of which are resolved before any rule runs.
var DefaultRules = []DefaultRule{
	{BinDir, ExecPrefix, "/bin"},
	{SBinDir, ExecPrefix, "/sbin"},
	{LibExecDir, Prefix, "/libexec"},
	{DataDir, Prefix, "/share"},
	{SysConfDir, Prefix, "/etc"},
	{SharedStateDir, Prefix, "/com"},
	{LocalStateDir, Prefix, "/var"},
	{LibDir, ExecPrefix, "/lib"},
	{IncludeDir, Prefix, "/include"},
	{InfoDir, Prefix, "/info"},
	{ManDir, Prefix, "/man"},
}

// HostDetector supplies the platform triple used when host is not given.
type HostDetector interface {
	Triple() (string, error)
}

// HostDetectorFunc adapts a function to HostDetector.
type HostDetectorFunc func() (string, error)

func (f HostDetectorFunc) Triple() (string, error) { return f() }

// Overrides holds values given on the command line, keyed by variable.
// An empty value counts as not given.
type Overrides map[Variable]string

// Set records value for the variable called name. Unknown names are
// ignored and reported as false.
func (o Overrides) Set(name, value string) bool {
	v, ok := Lookup(name)
	if !ok {
		return false
	}
	o[v] = value
	return true
}

// Resolve computes every variable from the overrides and the default
// rules. Host detection runs only when host is not overridden.
func Resolve(overrides Overrides, detector HostDetector) (*VariableSet, error) {
	logger := logging.GetLogger("vars")
	set := &VariableSet{}

	for v, value := range overrides {
		if v < 0 || int(v) >= Count || value == "" {
			continue
		}
		set.values[v] = value
		set.given[v] = true
	}

	// A root of exactly "/" means install at the filesystem root; it is
	// kept empty so suffixes do not produce "//bin".
	if set.values[Prefix] == "" {
		set.values[Prefix] = DefaultPrefix
	} else if set.values[Prefix] == rootDir {
		set.values[Prefix] = ""
	}
	if set.values[ExecPrefix] == "" {
		set.values[ExecPrefix] = set.values[Prefix]
	} else if set.values[ExecPrefix] == rootDir {
		set.values[ExecPrefix] = ""
	}
	if set.values[OldIncludeDir] == "" {
		set.values[OldIncludeDir] = DefaultOldIncludeDir
	}

	for _, rule := range DefaultRules {
		if set.values[rule.Target] != "" {
			continue
		}
		set.values[rule.Target] = set.values[rule.Root] + rule.Suffix
	}

	if set.values[Host] == "" {
		triple, err := detector.Triple()
		if err != nil {
			return nil, err
		}
		set.values[Host] = triple
		logger.Debug().Str("host", triple).Msg("detected host triple")
	}
	if set.values[Build] == "" {
		set.values[Build] = set.values[Host]
	}

	for _, v := range All() {
		logger.Debug().
			Str("variable", v.Name()).
			Str("value", set.values[v]).
			Bool("given", set.given[v]).
			Msg("resolved")
	}
	return set, nil
}

// VariableSet is the resolved, read-only set of installation variables.
type VariableSet struct {
	values [Count]string
	given  [Count]bool
}

// Get returns the resolved value. Prefix and exec_prefix are empty for
// an install at the filesystem root.
func (s *VariableSet) Get(v Variable) string {
	if v < 0 || int(v) >= Count {
		return ""
	}
	return s.values[v]
}

// Given reports whether v came from an override.
func (s *VariableSet) Given(v Variable) bool {
	if v < 0 || int(v) >= Count {
		return false
	}
	return s.given[v]
}

// SubstitutionValue returns the text written for @name@. An empty root
// is written as "/".
func (s *VariableSet) SubstitutionValue(v Variable) string {
	value := s.Get(v)
	if value == "" && v.isRoot() {
		return rootDir
	}
	return value
}

// Map returns name to substitution value for every variable.
func (s *VariableSet) Map() map[string]string {
	m := make(map[string]string, Count)
	for _, v := range All() {
		m[v.Name()] = s.SubstitutionValue(v)
	}
	return m
}
