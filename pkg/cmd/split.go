package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"github.com/vqltools/vqlkeeper/pkg/config"
	"github.com/vqltools/vqlkeeper/pkg/parser"
	"github.com/vqltools/vqlkeeper/pkg/repository"
	"github.com/vqltools/vqlkeeper/pkg/vql"
)

// splitCmd creates the CLI command that splits a monolithic export script
// into the project's repository tree, replacing the previous tree.
func splitCmd(cfg *config.Config, repo *repository.Repository) *cli.Command {
	return &cli.Command{
		Name:      "split",
		Usage:     "Split an export script into the repository tree",
		ArgsUsage: "<export.vql>",
		Before:    requireConfig(cfg),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return errors.New("an export file argument is required")
			}

			objects, err := parser.ParseFile(path)
			if err != nil {
				return err
			}

			cb, err := vql.NewCodebase(cfg.Base, objects)
			if err != nil {
				return err
			}

			if err := repo.Write(cb); err != nil {
				return err
			}

			fmt.Fprintf(cmd.Writer, "Split %d objects into %s\n", cb.Len(), repo.Root())
			return nil
		},
	}
}
