package cmd

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"github.com/vqltools/vqlkeeper/pkg/config"
	"github.com/vqltools/vqlkeeper/pkg/format"
	"github.com/vqltools/vqlkeeper/pkg/repository"
)

// exportCmd creates the CLI command that reassembles the repository tree
// into a single executable script, the inverse of split.
func exportCmd(cfg *config.Config, repo *repository.Repository) *cli.Command {
	return &cli.Command{
		Name:   "export",
		Usage:  "Reassemble the repository tree into a single script",
		Before: requireConfig(cfg),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "write the script to `FILE` instead of stdout",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cb, err := repo.Load(cfg.Base)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.Writer
			if out := cmd.String("out"); out != "" {
				f, err := os.Create(out)
				if err != nil {
					return errors.Wrapf(err, "cannot create %s", out)
				}
				defer f.Close()
				w = f
			}

			return format.Script(w, cb)
		},
	}
}
