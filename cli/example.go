package cli

import (
	"sdcalc/pkg/logger"

	"github.com/minio/cli"
	"github.com/minio/mc/pkg/probe"
)

// Example command.
var exampleCmd = cli.Command{
	Name:   "example",
	Usage:  "evaluate the 4-stream example (2 normal + 2 timelapse)",
	Action: mainExample,
	Before: setGlobalsFromContext,
	Flags:  combineFlags(paramFlags, outputFlags, globalFlags),
	CustomHelpTemplate: `NAME:
  {{.HelpName}} - {{.Usage}}

  Front and rear cameras record 315 MB every 5 minutes while driving
  (1 hour/day). Parked, the front camera writes a ~445 MB/hour timelapse and
  the rear one ~140 MB/hour for the remaining 23 hours.

USAGE:
  {{.HelpName}} [FLAGS]

FLAGS:
  {{range .VisibleFlags}}{{.}}
  {{end}}`,
}

// mainExample is the entry point for example command.
func mainExample(ctx *cli.Context) error {
	checkCalcSyntax(ctx)
	initLogger(ctx, ctx.Command.Name)
	defer logger.Sync()

	s, err := exampleSession(ctx)
	logger.FatalIf(probe.NewError(err), "Invalid parameters.")
	return runCalc(ctx, s)
}
