package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/bsconf/cmd/bsconf"
	"github.com/arthur-debert/bsconf/internal/version"
)

func main() {
	rootCmd := bsconf.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "BSCONF",
		Section: "1",
		Source:  "bsconf " + version.Version,
		Manual:  "bsconf manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
