package project

import (
	"fmt"

	"github.com/arthur-debert/bsconf/pkg/buffer"
	"github.com/arthur-debert/bsconf/pkg/errors"
	"github.com/arthur-debert/bsconf/pkg/programs"
)

// Package identifies the software being configured.
type Package struct {
	Name      string `koanf:"name" toml:"name" yaml:"name"`
	Version   string `koanf:"version" toml:"version" yaml:"version"`
	Tarname   string `koanf:"tarname" toml:"tarname" yaml:"tarname"`
	String    string `koanf:"string" toml:"string" yaml:"string"`
	BugReport string `koanf:"bugreport" toml:"bugreport" yaml:"bugreport"`
}

// Header is substituted when File is readable in an include directory.
type Header struct {
	File  string `koanf:"file" toml:"file" yaml:"file"`
	Match string `koanf:"match" toml:"match" yaml:"match"`
	Found string `koanf:"found" toml:"found" yaml:"found"`
}

// Function is assumed to exist and always substituted.
type Function struct {
	Name        string `koanf:"name" toml:"name" yaml:"name"`
	Match       string `koanf:"match" toml:"match" yaml:"match"`
	Replacement string `koanf:"replacement" toml:"replacement" yaml:"replacement"`
}

// CustomVar replaces @Name@ with Value.
type CustomVar struct {
	Name  string `koanf:"name" toml:"name" yaml:"name"`
	Value string `koanf:"value" toml:"value" yaml:"value"`
}

// Project is the supplied configuration of a configure run.
type Project struct {
	Package     Package          `koanf:"package" toml:"package" yaml:"package"`
	BufferSize  int              `koanf:"buffer_size" toml:"buffer_size" yaml:"buffer_size"`
	Templates   []string         `koanf:"templates" toml:"templates" yaml:"templates"`
	EnvVars     []string         `koanf:"env_vars" toml:"env_vars" yaml:"env_vars"`
	IncludeDirs []string         `koanf:"include_dirs" toml:"include_dirs" yaml:"include_dirs"`
	Programs    []programs.Entry `koanf:"programs" toml:"programs" yaml:"programs"`
	Headers     []Header         `koanf:"headers" toml:"headers" yaml:"headers"`
	Functions   []Function       `koanf:"functions" toml:"functions" yaml:"functions"`
	CustomVars  []CustomVar      `koanf:"custom_vars" toml:"custom_vars" yaml:"custom_vars"`
}

// FunctionPairs returns the function substitutions in order.
func (p *Project) FunctionPairs() []buffer.Pair {
	pairs := make([]buffer.Pair, 0, len(p.Functions))
	for _, f := range p.Functions {
		pairs = append(pairs, buffer.Pair{Match: f.Match, Replacement: f.Replacement})
	}
	return pairs
}

// CustomPairs returns @NAME@ substitutions for the custom variables.
func (p *Project) CustomPairs() []buffer.Pair {
	pairs := make([]buffer.Pair, 0, len(p.CustomVars))
	for _, v := range p.CustomVars {
		pairs = append(pairs, buffer.Pair{Match: buffer.MakeToken(v.Name), Replacement: v.Value})
	}
	return pairs
}

// Validate rejects configurations the pipeline cannot run.
func (p *Project) Validate() error {
	if p.BufferSize <= 0 {
		return errors.Newf(errors.ErrConfigValid, "buffer_size must be positive, got %d", p.BufferSize)
	}
	for i, t := range p.Templates {
		if t == "" {
			return errors.Newf(errors.ErrConfigValid, "templates[%d] is empty", i)
		}
	}

	tokens := make(map[string]bool)
	for i, e := range p.Programs {
		if e.Token == "" || e.Name == "" {
			return errors.Newf(errors.ErrConfigValid, "programs[%d] needs both token and name", i)
		}
		if tokens[e.Token] {
			return errors.Newf(errors.ErrConfigValid, "program token %q is listed twice", e.Token).
				WithDetail("token", e.Token)
		}
		tokens[e.Token] = true
	}
	for i, h := range p.Headers {
		if h.File == "" || h.Match == "" {
			return errors.Newf(errors.ErrConfigValid, "headers[%d] needs both file and match", i)
		}
	}
	for i, f := range p.Functions {
		if f.Match == "" {
			return errors.Newf(errors.ErrConfigValid, "functions[%d] has no match text", i)
		}
	}
	for i, v := range p.CustomVars {
		if v.Name == "" {
			return errors.Newf(errors.ErrConfigValid, "custom_vars[%d] has no name", i)
		}
	}
	return nil
}

// Describe returns the package string used in help text.
func (p Package) Describe() string {
	if p.String != "" {
		return p.String
	}
	return fmt.Sprintf("%s %s", p.Name, p.Version)
}
