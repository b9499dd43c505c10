package project

import (
	"bytes"
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/bsconf/pkg/errors"
	"github.com/arthur-debert/bsconf/pkg/logging"
)

// EnvPrefix marks environment variables that override project settings.
const EnvPrefix = "BSCONF_"

// SearchNames are tried in order when no config file is given.
var SearchNames = []string{"bsconf.toml", ".bsconf.toml", "bsconf.yaml", "bsconf.yml"}

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Options controls where Load looks.
type Options struct {
	// ConfigFile is an explicit project file. It must exist.
	ConfigFile string
	// Dir is searched for SearchNames when ConfigFile is empty.
	Dir string
	// Overrides are koanf keys set from the command line. They win over
	// everything else.
	Overrides map[string]interface{}
}

// Load builds the project from the embedded defaults, the project file,
// BSCONF_ environment variables and command-line overrides, in that order.
func Load(opts Options) (*Project, error) {
	logger := logging.GetLogger("project")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse embedded defaults")
	}

	path, err := findConfigFile(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load project file %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("loaded project file")
	}

	err = k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load command line overrides")
		}
	}

	p, err := unmarshal(k)
	if err != nil {
		return nil, err
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Int("templates", len(p.Templates)).
		Int("programs", len(p.Programs)).
		Int("headers", len(p.Headers)).
		Msg("project configuration ready")
	return p, nil
}

// Default returns the embedded project configuration alone.
func Default() (*Project, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse embedded defaults")
	}
	return unmarshal(k)
}

func unmarshal(k *koanf.Koanf) (*Project, error) {
	var p Project
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &p,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &p, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal project configuration")
	}
	return &p, nil
}

// Marshal renders p as a TOML project file.
func Marshal(p *Project) ([]byte, error) {
	var buf bytes.Buffer
	enc := gotoml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(p); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode project")
	}
	return buf.Bytes(), nil
}

// envKey maps BSCONF_PACKAGE__NAME to package.name and
// BSCONF_BUFFER_SIZE to buffer_size.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

func findConfigFile(opts Options) (string, error) {
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "cannot read project file %s", opts.ConfigFile).
				WithDetail("path", opts.ConfigFile)
		}
		return opts.ConfigFile, nil
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	for _, name := range SearchNames {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", nil
}
