package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/bsconf/cmd/bsconf"
	"github.com/arthur-debert/bsconf/pkg/report"
)

func main() {
	rootCmd := bsconf.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, report.Error(err, report.DetectFormat(os.Stderr)))
		os.Exit(1)
	}
}
