package bsconf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/bsconf/cmd/bsconf/commands/genconfig"
	"github.com/arthur-debert/bsconf/internal/version"
	"github.com/arthur-debert/bsconf/pkg/filesystem"
	"github.com/arthur-debert/bsconf/pkg/host"
	"github.com/arthur-debert/bsconf/pkg/logging"
	"github.com/arthur-debert/bsconf/pkg/pipeline"
	"github.com/arthur-debert/bsconf/pkg/programs"
	"github.com/arthur-debert/bsconf/pkg/project"
	"github.com/arthur-debert/bsconf/pkg/report"
	"github.com/arthur-debert/bsconf/pkg/vars"
)

// HostSource detects the running platform.
type HostSource interface {
	Host() (host.Host, error)
	Triple() (string, error)
}

type options struct {
	verbosity   int
	dryRun      bool
	showVersion bool
	configFile  string
	format      string
	directory   string
	templates   []string
	overrides   vars.Overrides

	hosts HostSource
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&host.System{})
}

func newRootCmd(hosts HostSource) *cobra.Command {
	initTemplateFormatting()

	o := &options{overrides: vars.Overrides{}, hosts: hosts}

	rootCmd := &cobra.Command{
		Use:     "bsconf [--name=value]...",
		Short:   MsgRootShort,
		Long:    fmt.Sprintf(MsgRootLong, "this package"),
		Example: MsgRootExample,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(o.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.showVersion {
				return o.printVersion(cmd)
			}
			return o.run(cmd)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}
	rootCmd.FParseErrWhitelist.UnknownFlags = true
	rootCmd.SetGlobalNormalizationFunc(normalizeFlagName)

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&o.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&o.configFile, "config", "", MsgFlagConfig)
	flags.StringVar(&o.format, "format", "auto", MsgFlagFormat)
	flags.StringVarP(&o.directory, "directory", "C", "", MsgFlagDirectory)
	addVariableFlags(flags, o.overrides)

	rootCmd.Flags().BoolVar(&o.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.Flags().BoolVar(&o.showVersion, "version", false, MsgFlagVersion)
	rootCmd.Flags().StringSliceVar(&o.templates, "templates", nil, MsgFlagTemplates)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetHelpFunc(o.help(rootCmd.HelpFunc()))

	rootCmd.AddCommand(o.newShowCmd())
	rootCmd.AddCommand(genconfig.NewCommand())

	return rootCmd
}

func (o *options) newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: MsgShowShort,
		Long:  MsgShowLong,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := o.setup(cmd, filesystem.NewOS())
			if err != nil {
				return err
			}
			format, err := o.outputFormat(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return report.Write(cmd.OutOrStdout(), format, report.FromContext(ctx, nil, false))
		},
	}
	cmd.FParseErrWhitelist.UnknownFlags = true
	return cmd
}

// run generates every template of the project.
func (o *options) run(cmd *cobra.Command) error {
	format, err := o.outputFormat(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	var fsys filesystem.FS = filesystem.NewOS()
	if o.dryRun {
		fsys = filesystem.NewDryRun(fsys)
	}

	ctx, err := o.setup(cmd, fsys)
	if err != nil {
		return err
	}

	files, runErr := ctx.Run()
	summary := report.FromContext(ctx, files, o.dryRun)
	if err := report.WriteFiles(cmd.OutOrStdout(), format, summary); err != nil && runErr == nil {
		return err
	}
	return runErr
}

// setup loads the project and resolves variables, host and programs.
func (o *options) setup(cmd *cobra.Command, fsys filesystem.FS) (*pipeline.Context, error) {
	logger := logging.GetLogger("cli")

	p, err := project.Load(o.projectOptions(cmd))
	if err != nil {
		return nil, err
	}

	h, err := o.hosts.Host()
	if err != nil {
		return nil, err
	}

	vs, err := vars.Resolve(o.overrides, o.hosts)
	if err != nil {
		return nil, err
	}

	progs := programs.LocateOnPath(p.Programs, fsys)

	ctx := pipeline.New(p, vs, h, progs, fsys, nil)
	ctx.Dir = o.directory

	logger.Debug().
		Str("host", vs.Get(vars.Host)).
		Str("prefix", vs.Get(vars.Prefix)).
		Bool("dryRun", o.dryRun).
		Msg("configure context ready")
	return ctx, nil
}

func (o *options) projectOptions(cmd *cobra.Command) project.Options {
	opts := project.Options{ConfigFile: o.configFile, Dir: o.directory}
	if opts.ConfigFile != "" && o.directory != "" && !filepath.IsAbs(opts.ConfigFile) {
		opts.ConfigFile = filepath.Join(o.directory, opts.ConfigFile)
	}
	if f := cmd.Flags().Lookup("templates"); f != nil && f.Changed {
		opts.Overrides = map[string]interface{}{"templates": o.templates}
	}
	return opts
}

func (o *options) outputFormat(w io.Writer) (report.Format, error) {
	format, err := report.ParseFormat(o.format)
	if err != nil {
		return format, err
	}
	if f, ok := w.(*os.File); ok {
		return format.Resolve(f), nil
	}
	if format == report.FormatAuto {
		return report.FormatText, nil
	}
	return format, nil
}

// helpProject loads the project for help and version text. A broken
// project file falls back to the built-in defaults.
func (o *options) helpProject(cmd *cobra.Command) *project.Project {
	p, err := project.Load(o.projectOptions(cmd))
	if err == nil {
		return p
	}
	log.Debug().Err(err).Msg("using built-in project for help")
	if p, err = project.Default(); err == nil {
		return p
	}
	return &project.Project{}
}

func (o *options) printVersion(cmd *cobra.Command) error {
	pkg := o.helpProject(cmd).Package
	_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, pkg.Name, pkg.Version, version.Version)
	return err
}

// help extends the root command help with the package description and
// the environment variables that are substituted.
func (o *options) help(defaultHelp func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		if cmd != cmd.Root() {
			defaultHelp(cmd, args)
			return
		}

		logging.SetupLogger(o.verbosity)
		p := o.helpProject(cmd)
		cmd.Long = fmt.Sprintf(MsgRootLong, p.Package.Describe())
		defaultHelp(cmd, args)

		out := cmd.OutOrStdout()
		if len(p.EnvVars) > 0 {
			fmt.Fprintf(out, "\n%s\n", formatBold(MsgEnvHeader))
			for _, name := range p.EnvVars {
				fmt.Fprintf(out, "  %s\n", name)
			}
			fmt.Fprintf(out, "\n%s\n", MsgEnvFooter)
		}
		if p.Package.BugReport != "" {
			fmt.Fprintf(out, "\n"+MsgBugsFormat, p.Package.BugReport)
		}
	}
}
