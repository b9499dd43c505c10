// Package project loads the description of what a configure run works on:
// the template list, the programs, headers and functions to probe, custom
// variables and package metadata.
//
// Settings are layered with koanf. The embedded defaults come first, then
// the project file (bsconf.toml, .bsconf.toml, bsconf.yaml or bsconf.yml,
// or an explicit --config path), then BSCONF_ environment variables, then
// command-line overrides. Lists in a later layer replace earlier lists.
package project
