package host

import (
	"github.com/arthur-debert/bsconf/pkg/buffer"
	"github.com/arthur-debert/bsconf/pkg/project"
)

const sharedLibraryRules = "MAJOR\t\t= @LIB_MAJOR@\nMINOR\t\t= @LIB_MINOR@\nBUILD\t\t= @LIB_BUILD@"

// fixedDefines are config.h rewrites that hold on every supported host.
var fixedDefines = []buffer.Pair{
	{Match: "#undef RETSIGTYPE", Replacement: "#define RETSIGTYPE void"},
	{Match: "#undef const", Replacement: "/* #define const */"},
	{Match: "#undef inline", Replacement: "/* #define inline __inline */"},
	{Match: "#undef off_t", Replacement: "/* typedef long off_t; */"},
	{Match: "#undef size_t", Replacement: "/* typedef long size_t; */"},
	{Match: "#undef LSTAT_FOLLOWS_SLASHED_SYMLINK", Replacement: "#define LSTAT_FOLLOWS_SLASHED_SYMLINK 1"},
	{Match: "#undef HAVE_STAT_EMPTY_STRING_BUG", Replacement: "/* #undef HAVE_STAT_EMPTY_STRING_BUG */"},
}

// Options returns the host specific substitutions, applied before any
// other pass.
func (h Host) Options(pkg project.Package) []buffer.Pair {
	var pairs []buffer.Pair

	switch {
	case h.Is("osx", "darwin"):
		pairs = append(pairs, buffer.Pair{Match: "@SYSWARNS@", Replacement: "-Wno-long-double"})
	case h.Is("sun", "solaris"):
		pairs = append(pairs, buffer.Pair{Match: "@SYSWARNS@", Replacement: "-Wno-redundant-decls"})
	default:
		pairs = append(pairs, buffer.Pair{Match: "@SYSWARNS@", Replacement: ""})
	}

	if h.Is("linux") {
		pairs = append(pairs, buffer.Pair{Match: "@BUILD_SHARED_LIBRARIES@", Replacement: sharedLibraryRules})
	} else {
		pairs = append(pairs, buffer.Pair{Match: "@BUILD_SHARED_LIBRARIES@\n", Replacement: ""})
	}

	pairs = append(pairs, fixedDefines...)
	return append(pairs,
		define("PACKAGE_BUGREPORT", pkg.BugReport),
		define("PACKAGE_NAME", pkg.Name),
		define("PACKAGE_STRING", pkg.String),
		define("PACKAGE_TARNAME", pkg.Tarname),
		define("PACKAGE_VERSION", pkg.Version),
	)
}

func define(name, value string) buffer.Pair {
	return buffer.Pair{
		Match:       "#undef " + name,
		Replacement: "#define " + name + " \"" + value + "\"",
	}
}
