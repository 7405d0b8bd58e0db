// Package cmd implements the vqlkeeper CLI commands.
//
// Commands are provided through an fx module and wired into a single
// urfave/cli application by Run. Each command is a constructor taking its
// dependencies (config, repository) and returning a *cli.Command, which
// keeps commands testable without a running application.
package cmd
