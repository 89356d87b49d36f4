package cli

import (
	"fmt"
	"io"

	"sdcalc/config"
	"sdcalc/models"
	"sdcalc/pkg/calc"
	"sdcalc/pkg/logger"
	"sdcalc/pkg/report"
	"sdcalc/pkg/utils"

	"github.com/fatih/color"
	"github.com/minio/cli"
	"github.com/minio/mc/pkg/probe"
)

// stdout receives reports; swapped in tests.
var stdout io.Writer = color.Output

// Calc command.
var calcCmd = cli.Command{
	Name:   "calc",
	Usage:  "calculate card writes, endurance and capacity for recording streams",
	Action: mainCalc,
	Before: setGlobalsFromContext,
	Flags:  combineFlags(streamFlags, paramFlags, outputFlags, globalFlags),
	CustomHelpTemplate: `NAME:
  {{.HelpName}} - {{.Usage}}

USAGE:
  {{.HelpName}} [FLAGS]

FLAGS:
  {{range .VisibleFlags}}{{.}}
  {{end}}
EXAMPLES:
  1. Front camera writing 315 MB every 5 minutes around the clock:
     {{.Prompt}} {{.HelpName}} --stream "Front:315:5:24"

  2. Normal and timelapse streams, keeping 48 hours of footage:
     {{.Prompt}} {{.HelpName}} -s "Front:315:5:1" -s "Front (timelapse):445:60:23" --retention-hours 48

  3. Reuse a saved session and export the table:
     {{.Prompt}} {{.HelpName}} --file dashcam.yaml --export dashcam
`,
}

// mainCalc is the entry point for calc command.
func mainCalc(ctx *cli.Context) error {
	checkCalcSyntax(ctx)
	initLogger(ctx, ctx.Command.Name)
	defer logger.Sync()

	s, err := sessionFromContext(ctx)
	logger.FatalIf(probe.NewError(err), "Unable to read stream configuration.")
	return runCalc(ctx, s)
}

func checkCalcSyntax(ctx *cli.Context) {
	if ctx.NArg() > 0 {
		logger.FatalIf(errInvalidArgument().Trace(ctx.Args()...), "Command takes no arguments.")
	}
}

// initLogger starts logging to --log-dir, and to the console with --debug.
func initLogger(ctx *cli.Context, prefix string) {
	level := "info"
	if config.GlobalDebug {
		level = "debug"
	}
	logDir := ctx.String("log-dir")
	if logDir == "" {
		logDir = ctx.GlobalString("log-dir")
	}
	err := logger.InitLogger(config.AppName+"_"+prefix, ctx.String("log-format"), level, logDir, config.GlobalDebug)
	logger.FatalIf(probe.NewError(err), "Unable to initialize logger.")
}

// runCalc evaluates a validated session and writes every requested output.
func runCalc(ctx *cli.Context, s *models.Session) error {
	rep := calc.Evaluate(s.Streams, s.Params)
	report.LogSummary(rep)

	switch {
	case config.GlobalJSON:
		err := report.WriteJSON(stdout, rep)
		logger.FatalIf(probe.NewError(err), "Unable to write report.")
	case config.GlobalQuiet:
		fmt.Fprintf(stdout, "%d GB card, %s TB TBW\n",
			rep.Recommendation.CardGB, utils.FormatFloat(rep.Endurance.TBWWithMargin, 3))
	default:
		report.WriteText(stdout, rep)
	}

	if path := ctx.String("save"); path != "" {
		if err := config.SaveSession(path, s); err != nil {
			logger.ErrorIf(probe.NewError(err), "Unable to save session.")
		} else {
			infof("Session written to %q", path)
		}
	}
	if path := ctx.String("export"); path != "" {
		if name, err := report.Export(path, rep, utils.CommandLine(ctx)); err != nil {
			logger.ErrorIf(probe.NewError(err), "Unable to export report.")
		} else {
			infof("Report written to %q", name)
		}
	}
	return nil
}

// infof reports side outputs without polluting JSON on stdout.
func infof(format string, data ...interface{}) {
	logger.Logger.Infof(format, data...)
	if !config.GlobalJSON && !config.GlobalQuiet {
		logger.PrintInfo(fmt.Sprintf(format, data...))
	}
}
