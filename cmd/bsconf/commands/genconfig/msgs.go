package genconfig

// Message constants
const (
	MsgShort   = "Print a starter project file"
	MsgLong    = "Output the built-in project configuration as TOML to stdout, or write it to bsconf.toml.\n\nEdit the templates list and the program, header and function checks to suit the project."
	MsgExample = `  bsconf genconfig                # Output to stdout
  bsconf genconfig -w             # Write to ./bsconf.toml
  bsconf genconfig -w -C src      # Write to src/bsconf.toml`
	MsgFlagWrite  = "Write config to bsconf.toml instead of stdout"
	MsgFlagForce  = "Overwrite an existing bsconf.toml"
	MsgWroteFile  = "Wrote %s\n"
	MsgFileExists = "%s already exists, use --force to overwrite it"
)
