package pipeline

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/bsconf/pkg/buffer"
	"github.com/arthur-debert/bsconf/pkg/errors"
	"github.com/arthur-debert/bsconf/pkg/filesystem"
	"github.com/arthur-debert/bsconf/pkg/host"
	"github.com/arthur-debert/bsconf/pkg/logging"
	"github.com/arthur-debert/bsconf/pkg/programs"
	"github.com/arthur-debert/bsconf/pkg/project"
	"github.com/arthur-debert/bsconf/pkg/vars"
)

// TemplateSuffix is appended to a template name to find its input file.
const TemplateSuffix = ".in"

// EnvLookup reports the value of an environment variable and whether it
// is set.
type EnvLookup func(name string) (string, bool)

// Context carries everything one configure run resolved. Templates are
// processed through a single working buffer owned by the context.
type Context struct {
	Project  *project.Project
	Vars     *vars.VariableSet
	Host     host.Host
	Programs []programs.Resolved
	FS       filesystem.FS
	Env      EnvLookup
	// Dir is prepended to template names. Empty means the working
	// directory.
	Dir string

	buf    *buffer.FileBuffer
	logger zerolog.Logger
}

// FileResult describes one processed template.
type FileResult struct {
	Name         string `json:"name" yaml:"name"`
	Input        string `json:"input" yaml:"input"`
	Output       string `json:"output" yaml:"output"`
	Bytes        int    `json:"bytes" yaml:"bytes"`
	Replacements int    `json:"replacements" yaml:"replacements"`
}

// New builds a context. A nil env uses os.LookupEnv.
func New(p *project.Project, vs *vars.VariableSet, h host.Host, progs []programs.Resolved, fsys filesystem.FS, env EnvLookup) *Context {
	if env == nil {
		env = os.LookupEnv
	}
	return &Context{
		Project:  p,
		Vars:     vs,
		Host:     h,
		Programs: progs,
		FS:       fsys,
		Env:      env,
		buf:      buffer.New(p.BufferSize),
		logger:   logging.GetLogger("pipeline"),
	}
}

// Run processes the project templates in order. It stops at the first
// failure; files finished before it stay written and are returned along
// with the error.
func (c *Context) Run() ([]FileResult, error) {
	results := make([]FileResult, 0, len(c.Project.Templates))
	for _, name := range c.Project.Templates {
		res, err := c.Process(name)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// Process loads name.in, applies every substitution pass and writes name.
// Nothing is written when a pass fails.
func (c *Context) Process(name string) (FileResult, error) {
	done := logging.LogOperationStart(c.logger, "template "+name)
	defer done()

	res := FileResult{
		Name:   name,
		Input:  filepath.Join(c.Dir, name+TemplateSuffix),
		Output: filepath.Join(c.Dir, name),
	}

	if err := c.read(res.Input); err != nil {
		return res, err
	}

	n, err := c.substitute()
	res.Replacements = n
	if err != nil {
		return res, errors.AddDetail(err, "file", res.Input)
	}

	if err := c.write(res.Output); err != nil {
		return res, err
	}
	res.Bytes = c.buf.Size()

	c.logger.Info().
		Str("file", res.Output).
		Int("bytes", res.Bytes).
		Int("replacements", res.Replacements).
		Msg("wrote file")
	return res, nil
}

// Passes returns the substitution passes in application order.
func (c *Context) Passes() []Pass {
	return []Pass{
		{Name: "host", Pairs: c.hostPairs},
		{Name: "paths", Pairs: c.pathPairs},
		{Name: "environment", Pairs: func() []buffer.Pair { return c.envPairs(false) }},
		{Name: "programs", Pairs: c.programPairs},
		{Name: "headers", Pairs: c.headerPairs},
		{Name: "functions", Pairs: c.Project.FunctionPairs},
		{Name: "custom", Pairs: c.Project.CustomPairs},
		{Name: "environment-forced", Pairs: func() []buffer.Pair { return c.envPairs(true) }},
	}
}

func (c *Context) substitute() (int, error) {
	total := 0
	for _, pass := range c.Passes() {
		n, err := c.buf.Apply(pass.Pairs())
		total += n
		if err != nil {
			return total, err
		}
		c.logger.Debug().Str("pass", pass.Name).Int("replacements", n).Msg("applied pass")
	}
	return total, nil
}

func (c *Context) read(path string) error {
	f, err := c.FS.Open(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileOpen, "cannot open %s", path).
			WithDetail("file", path)
	}
	defer func() { _ = f.Close() }()

	return errors.AddDetail(c.buf.Load(f), "file", path)
}

func (c *Context) write(path string) error {
	f, err := c.FS.Create(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot create %s", path).
			WithDetail("file", path)
	}

	n, err := c.buf.WriteTo(f)
	if err == nil && n != int64(c.buf.Size()) {
		err = io.ErrShortWrite
	}
	if err != nil {
		_ = f.Close()
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path).
			WithDetail("file", path).
			WithDetail("written", n)
	}

	if err := f.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrFileClose, "cannot close %s", path).
			WithDetail("file", path)
	}
	return nil
}
