package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"github.com/vqltools/vqlkeeper/pkg/config"
	"github.com/vqltools/vqlkeeper/pkg/repository"
)

// statusCmd creates the CLI command that checks the repository tree
// against its sum file and reports any drift.
func statusCmd(cfg *config.Config, repo *repository.Repository) *cli.Command {
	return &cli.Command{
		Name:   "status",
		Usage:  "Verify the repository tree against its sum file",
		Before: requireConfig(cfg),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			result, err := repo.Verify()
			if err != nil {
				return err
			}

			if result.Clean() {
				fmt.Fprintln(cmd.Writer, "Repository is clean.")
				return nil
			}

			for _, f := range result.Drifted {
				fmt.Fprintf(cmd.Writer, "modified: %s\n", f)
			}
			for _, f := range result.Missing {
				fmt.Fprintf(cmd.Writer, "missing:  %s\n", f)
			}
			for _, f := range result.Untracked {
				fmt.Fprintf(cmd.Writer, "untracked: %s\n", f)
			}

			return errors.New("repository does not match its sum file")
		},
	}
}
