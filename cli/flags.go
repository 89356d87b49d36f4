package cli

import (
	"fmt"

	"sdcalc/config"
	"sdcalc/models"

	"github.com/minio/cli"
	"github.com/minio/pkg/console"
)

// Collection of sdcalc flags currently supported
var globalFlags = []cli.Flag{
	cli.BoolFlag{
		Name:  "quiet, q",
		Usage: "print only the recommendation",
	},
	cli.BoolFlag{
		Name:  "no-color",
		Usage: "disable color theme",
	},
	cli.BoolFlag{
		Name:  "json",
		Usage: "enable JSON formatted output",
	},
	cli.BoolFlag{
		Name:  "debug",
		Usage: "enable debug output",
	},
	cli.StringFlag{
		Name:   "log-dir",
		Usage:  "write log files to this folder",
		EnvVar: config.AppNameUC + "_LOG_DIR",
	},
	cli.StringFlag{
		Name:  "log-format",
		Value: "text",
		Usage: "log file format, text or json",
	},
	cli.BoolFlag{
		Name:  "autocompletion",
		Usage: "install auto-completion for your shell",
	},
}

var profileFlags = []cli.Flag{
	cli.StringFlag{
		Name:   "pprofdir",
		Usage:  "Write profiles to this folder",
		Value:  "pprof",
		Hidden: true,
	},

	cli.BoolFlag{
		Name:   "cpu",
		Usage:  "Write a local CPU profile",
		Hidden: true,
	},
	cli.BoolFlag{
		Name:   "mem",
		Usage:  "Write an local allocation profile",
		Hidden: true,
	},
	cli.BoolFlag{
		Name:   "block",
		Usage:  "Write a local goroutine blocking profile",
		Hidden: true,
	},
	cli.BoolFlag{
		Name:   "mutex",
		Usage:  "Write a mutex contention profile",
		Hidden: true,
	},
	cli.BoolFlag{
		Name:   "threads",
		Usage:  "Write a thread create profile",
		Hidden: true,
	},
	cli.BoolFlag{
		Name:   "trace",
		Usage:  "Write an local execution trace",
		Hidden: true,
	},
}

// Set global states. NOTE: It is deliberately kept monolithic to ensure we dont miss out any flags.
func setGlobalsFromContext(ctx *cli.Context) error {
	quiet := flagSet(ctx, "quiet")
	debug := flagSet(ctx, "debug")
	json := flagSet(ctx, "json")
	noColor := flagSet(ctx, "no-color")
	setGlobals(quiet, debug, json, noColor)
	return nil
}

// Set global states. NOTE: It is deliberately kept monolithic to ensure we dont miss out any flags.
func setGlobals(quiet, debug, json, noColor bool) {
	config.GlobalQuiet = config.GlobalQuiet || quiet
	config.GlobalDebug = config.GlobalDebug || debug
	config.GlobalJSON = config.GlobalJSON || json
	config.GlobalNoColor = config.GlobalNoColor || noColor

	// Disable colorified messages if requested.
	if config.GlobalNoColor || config.GlobalJSON {
		console.SetColorOff()
	}
}

// Stream description flags.
var streamFlags = []cli.Flag{
	cli.StringSliceFlag{
		Name: "stream, s",
		Usage: fmt.Sprintf("streamFlag: stream as NAME:FILE_SIZE_MB:FILE_LENGTH_MIN:HOURS_PER_DAY, repeat for up to %d streams. "+
			"Empty fields take defaults, a NAME containing ':' needs all four fields. "+
			"For a timelapse stream use the MB written per hour and a 60 minute length", models.MaxStreams),
	},
	cli.IntFlag{
		Name:  "streams, n",
		Value: 2,
		Usage: fmt.Sprintf("streamFlag: number of default streams (%d-%d) when no --stream is given", models.MinStreams, models.MaxStreams),
	},
	cli.StringFlag{
		Name:   "file, f",
		Usage:  "streamFlag: load streams and parameters from a YAML session file",
		EnvVar: config.AppNameUC + "_FILE",
	},
}

// Recommendation parameter flags.
var paramFlags = []cli.Flag{
	cli.IntFlag{
		Name:   "retention-hours",
		Value:  models.DefaultRetentionHours,
		Usage:  fmt.Sprintf("paramFlag: hours of footage to keep before the card loops (%d-%d)", models.MinRetentionHours, models.MaxRetentionHours),
		EnvVar: config.AppNameUC + "_RETENTION_HOURS",
	},
	cli.Float64Flag{
		Name:   "lifetime-years",
		Value:  models.DefaultLifetimeYears,
		Usage:  fmt.Sprintf("paramFlag: wanted card lifetime in years (>= %v)", models.MinLifetimeYears),
		EnvVar: config.AppNameUC + "_LIFETIME_YEARS",
	},
	cli.Float64Flag{
		Name:   "safety-margin",
		Value:  models.DefaultSafetyMarginPct,
		Usage:  fmt.Sprintf("paramFlag: TBW safety margin in percent (%v-%v)", models.MinSafetyMarginPct, models.MaxSafetyMarginPct),
		EnvVar: config.AppNameUC + "_SAFETY_MARGIN",
	},
}

// Output flags.
var outputFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "save",
		Usage: "outputFlag: write the evaluated streams and parameters to a YAML session file",
	},
	cli.StringFlag{
		Name:  "export",
		Usage: "outputFlag: write the per-stream table as zstd compressed CSV (.csv.zst appended)",
	},
}

var cardsFlags = []cli.Flag{
	cli.Float64Flag{
		Name:  "rate",
		Value: 0,
		Usage: "cardsFlag: average write rate in MB per hour",
	},
}
