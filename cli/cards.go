package cli

import (
	"errors"
	"fmt"
	"math"

	"sdcalc/config"
	"sdcalc/pkg/calc"
	"sdcalc/pkg/logger"
	"sdcalc/pkg/report"

	"github.com/minio/cli"
	"github.com/minio/mc/pkg/probe"
)

// Cards command.
var cardsCmd = cli.Command{
	Name:   "cards",
	Usage:  "list card sizes with the retention they give at a write rate",
	Action: mainCards,
	Before: setGlobalsFromContext,
	Flags:  combineFlags(cardsFlags, globalFlags),
	CustomHelpTemplate: `NAME:
  {{.HelpName}} - {{.Usage}}

USAGE:
  {{.HelpName}} --rate MB_PER_HOUR

FLAGS:
  {{range .VisibleFlags}}{{.}}
  {{end}}`,
}

// mainCards is the entry point for cards command.
func mainCards(ctx *cli.Context) error {
	checkCalcSyntax(ctx)
	initLogger(ctx, ctx.Command.Name)
	defer logger.Sync()

	rate := ctx.Float64("rate")
	if rate < 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		logger.FatalIf(probe.NewError(errors.New("rate must be a finite number >= 0")), "Invalid write rate.")
	}
	rows := calc.RetentionTableFor(calc.CardLadder, rate)
	logger.Logger.Debugf("retention at %v MB/h: %v", rate, rows)

	if config.GlobalJSON {
		err := report.WriteCardsJSON(stdout, rate, rows)
		logger.FatalIf(probe.NewError(err), "Unable to write card table.")
		return nil
	}
	fmt.Fprintf(stdout, "Retention at %v MB/hour:\n", rate)
	report.WriteRetentionTable(stdout, rows)
	return nil
}
