package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"github.com/vqltools/vqlkeeper/pkg/consts"
	"github.com/vqltools/vqlkeeper/pkg/project"
)

// initCmd creates the CLI command that scaffolds a new vqlkeeper project:
// a vqlkeeper.yaml plus the exports and repository directories.
func initCmd() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Initialize a new vqlkeeper project",
		ArgsUsage: "[dir]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir := cmd.Args().First()
			if dir == "" {
				dir = "."
			}

			if err := os.MkdirAll(dir, consts.ModeDir); err != nil {
				return errors.Wrapf(err, "failed to create project directory %s", dir)
			}

			if err := project.New(dir).Initialize(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.Writer, "Initialized vqlkeeper project in %s\n", dir)
			return nil
		},
	}
}
