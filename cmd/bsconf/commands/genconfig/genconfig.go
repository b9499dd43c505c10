package genconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/bsconf/pkg/errors"
	"github.com/arthur-debert/bsconf/pkg/project"
)

// FileName is the file written by genconfig -w.
const FileName = "bsconf.toml"

// NewCommand creates the genconfig command
func NewCommand() *cobra.Command {
	var write, force bool

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := project.Default()
			if err != nil {
				return err
			}
			data, err := project.Marshal(p)
			if err != nil {
				return err
			}

			if !write {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			dir, _ := cmd.Flags().GetString("directory")
			path := filepath.Join(dir, FileName)
			return writeConfig(cmd, path, data, force)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)

	return cmd
}

func writeConfig(cmd *cobra.Command, path string, data []byte, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.Newf(errors.ErrFileWrite, MsgFileExists, path).WithDetail("file", path)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path).WithDetail("file", path)
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgWroteFile, path)
	return err
}
