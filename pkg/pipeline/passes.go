package pipeline

import (
	"github.com/arthur-debert/bsconf/pkg/buffer"
	"github.com/arthur-debert/bsconf/pkg/vars"
)

// Pass is one named group of substitutions. Pairs is evaluated per
// template, so header and environment probes see the current state.
type Pass struct {
	Name  string
	Pairs func() []buffer.Pair
}

func (c *Context) hostPairs() []buffer.Pair {
	return c.Host.Options(c.Project.Package)
}

func (c *Context) pathPairs() []buffer.Pair {
	pairs := make([]buffer.Pair, 0, vars.Count)
	for _, v := range vars.All() {
		pairs = append(pairs, buffer.Pair{
			Match:       buffer.MakeToken(v.Name()),
			Replacement: c.Vars.SubstitutionValue(v),
		})
	}
	return pairs
}

// envPairs substitutes @NAME@ for each configured variable. Without
// force, unset variables keep their token for a later pass; with force
// they become empty.
func (c *Context) envPairs(force bool) []buffer.Pair {
	var pairs []buffer.Pair
	for _, name := range c.Project.EnvVars {
		value, ok := c.Env(name)
		if !ok && !force {
			continue
		}
		pairs = append(pairs, buffer.Pair{Match: buffer.MakeToken(name), Replacement: value})
	}
	return pairs
}

func (c *Context) programPairs() []buffer.Pair {
	pairs := make([]buffer.Pair, 0, len(c.Programs))
	for _, p := range c.Programs {
		pairs = append(pairs, buffer.Pair{Match: buffer.MakeToken(p.Token), Replacement: p.Value})
	}
	return pairs
}

// IncludeDirs lists the directories searched for headers: includedir,
// oldincludedir, then the project's extra directories.
func (c *Context) IncludeDirs() []string {
	dirs := []string{c.Vars.Get(vars.IncludeDir), c.Vars.Get(vars.OldIncludeDir)}
	return append(dirs, c.Project.IncludeDirs...)
}

// headerPairs yields one substitution per header per directory that holds
// a readable copy of it.
func (c *Context) headerPairs() []buffer.Pair {
	dirs := c.IncludeDirs()
	var pairs []buffer.Pair
	for _, h := range c.Project.Headers {
		for _, dir := range dirs {
			if c.FS.Readable(dir + "/" + h.File) {
				pairs = append(pairs, buffer.Pair{Match: h.Match, Replacement: h.Found})
			}
		}
	}
	return pairs
}
