package cmd

import (
	"context"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"github.com/vqltools/vqlkeeper/pkg/config"
	"github.com/vqltools/vqlkeeper/pkg/diff"
	"github.com/vqltools/vqlkeeper/pkg/format"
	"github.com/vqltools/vqlkeeper/pkg/vql"
)

// diffCmd creates the CLI command that compares two code bases. Each
// argument may be a repository tree or a raw export script; with a single
// argument the project repository is the base model.
//
// The command exits non-zero when differences exist, so it can gate CI
// pipelines the same way diff(1) does.
func diffCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "diff",
		Usage:     "Compare two code bases and report changes",
		ArgsUsage: "[<base>] <compare>",
		Before:    requireConfig(cfg),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored output",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var base, comp *vql.Codebase
			var err error

			switch cmd.Args().Len() {
			case 1:
				base, err = loadModel(cfg.Repo, cfg.Base)
				if err != nil {
					return err
				}
				comp, err = loadModel(cmd.Args().Get(0), cfg.Comp)
			case 2:
				base, err = loadModel(cmd.Args().Get(0), cfg.Base)
				if err != nil {
					return err
				}
				comp, err = loadModel(cmd.Args().Get(1), cfg.Comp)
			default:
				return errors.New("one or two code base arguments are required")
			}
			if err != nil {
				return err
			}

			report := diff.Compare(base, comp)

			opts := format.ReportOptions{NoColor: cmd.Bool("no-color")}
			if err := format.Report(cmd.Writer, report, opts); err != nil {
				return err
			}

			if !report.IsEmpty() {
				return errors.New("code bases differ")
			}
			return nil
		},
	}
}
