package cmd

import "go.uber.org/fx"

var Module = fx.Module("cli",
	fx.Provide(
		fx.Annotate(diffCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(exportCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(initCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(splitCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(statusCmd, fx.ResultTags(`group:"commands"`)),
	),
	fx.Invoke(Run),
)
