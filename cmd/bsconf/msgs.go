package bsconf

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort = "Generate build files from .in templates"
	MsgShowShort = "Print the resolved directories, programs and host"
	MsgShowLong  = "Show resolves everything a configure run would use and prints it without reading or writing any template."

	// Version text
	MsgVersionFormat = "%s configure %s\n\nUsing bsconf package version %s\n" +
		"Copyright 2003, Mike Sharov <msharov@talentg.com>\n" +
		"This configure script and the bsconf package are free software.\n" +
		"Unlimited permission to copy, distribute, and modify is granted.\n"

	// Help sections
	MsgEnvHeader  = "Some influential environment variables:"
	MsgEnvFooter  = "Use these variables to override the choices made by bsconf or to help\nit to find programs with nonstandard names or locations."
	MsgBugsFormat = "Report bugs to %s.\n"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun    = "Resolve and substitute without writing any file"
	MsgFlagConfig    = "Project file (default: bsconf.toml, .bsconf.toml, bsconf.yaml or bsconf.yml)"
	MsgFlagFormat    = "Output format: auto, term, text, json or yaml"
	MsgFlagDirectory = "Run as if started in `DIR`"
	MsgFlagTemplates = "Templates to generate, overriding the project file"
	MsgFlagVersion   = "Print version information and exit"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
