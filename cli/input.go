package cli

import (
	"fmt"
	"strconv"
	"strings"

	"sdcalc/config"
	"sdcalc/models"
	"sdcalc/pkg/utils"

	"github.com/minio/cli"
)

const streamSpecFields = 4

// parseStreamSpec parses NAME:FILE_SIZE_MB:FILE_LENGTH_MIN:HOURS_PER_DAY.
// Trailing fields may be omitted and any field left empty; those take the
// defaults of the stream at position idx. A name containing ':' is only
// recognised when all four fields are given.
func parseStreamSpec(spec string, idx int) (models.StreamConfig, error) {
	s := models.DefaultStream(idx)
	parts := strings.Split(spec, ":")
	if len(parts) > streamSpecFields {
		n := len(parts) - streamSpecFields + 1
		parts = append([]string{strings.Join(parts[:n], ":")}, parts[n:]...)
	}

	if name := strings.TrimSpace(parts[0]); name != "" {
		s.Name = name
	}
	numbers := []struct {
		label string
		dst   *float64
	}{
		{"file size", &s.FileSizeMB},
		{"file length", &s.FileLengthMin},
		{"hours per day", &s.HoursPerDay},
	}
	for i, field := range parts[1:] {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return s, fmt.Errorf("%w %q: %s %q is not a number", models.ErrInvalidStream, spec, numbers[i].label, field)
		}
		*numbers[i].dst = v
	}
	return s, nil
}

// parseStreamSpecs parses every --stream value in order.
func parseStreamSpecs(specs []string) ([]models.StreamConfig, error) {
	if len(specs) > models.MaxStreams {
		return nil, fmt.Errorf("%w: at most %d streams, got %d", models.ErrInvalidStream, models.MaxStreams, len(specs))
	}
	streams := make([]models.StreamConfig, 0, len(specs))
	for i, spec := range specs {
		s, err := parseStreamSpec(spec, i)
		if err != nil {
			return nil, err
		}
		streams = append(streams, s)
	}
	return streams, nil
}

// defaultStreams returns n pre-filled streams.
func defaultStreams(n int) ([]models.StreamConfig, error) {
	if n < models.MinStreams || n > models.MaxStreams {
		return nil, fmt.Errorf("%w: stream count must be within [%d, %d], got %d",
			models.ErrInvalidStream, models.MinStreams, models.MaxStreams, n)
	}
	streams := make([]models.StreamConfig, n)
	for i := range streams {
		streams[i] = models.DefaultStream(i)
	}
	return streams, nil
}

// flagSet reports whether the flag with the long name was given on the
// command line under any of its names, after the command or before it.
func flagSet(ctx *cli.Context, name string) bool {
	var flags []cli.Flag
	flags = append(flags, ctx.Command.Flags...)
	if ctx.App != nil {
		flags = append(flags, ctx.App.Flags...)
	}
	for _, f := range flags {
		if utils.FlagName(f) == name {
			return utils.IsSet(ctx, f)
		}
	}
	return ctx.IsSet(name) || ctx.GlobalIsSet(name)
}

// applyParamFlags overrides s.Params with the parameter flags. Values loaded
// from a file are only replaced by flags given explicitly.
func applyParamFlags(ctx *cli.Context, s *models.Session, fromFile bool) {
	if !fromFile || flagSet(ctx, "retention-hours") {
		s.RetentionHours = ctx.Int("retention-hours")
	}
	if !fromFile || flagSet(ctx, "lifetime-years") {
		s.ExpectedLifetimeYears = ctx.Float64("lifetime-years")
	}
	if !fromFile || flagSet(ctx, "safety-margin") {
		s.SafetyMarginPct = ctx.Float64("safety-margin")
	}
}

// sessionFromContext collects the calc command input: --file first, then
// --stream or --streams, then the parameter flags.
func sessionFromContext(ctx *cli.Context) (*models.Session, error) {
	s := &models.Session{Params: models.DefaultParams()}
	fromFile := false
	if path := ctx.String("file"); path != "" {
		loaded, err := config.LoadSession(path)
		if err != nil {
			return nil, err
		}
		s, fromFile = loaded, true
	}

	switch {
	case flagSet(ctx, "stream"):
		streams, err := parseStreamSpecs(ctx.StringSlice("stream"))
		if err != nil {
			return nil, err
		}
		s.Streams = streams
	case !fromFile || flagSet(ctx, "streams"):
		streams, err := defaultStreams(ctx.Int("streams"))
		if err != nil {
			return nil, err
		}
		s.Streams = streams
	}

	applyParamFlags(ctx, s, fromFile)
	s.Streams = s.NamedStreams()
	return s, s.Validate()
}

// exampleSession the documented 4-stream example with the parameter flags.
func exampleSession(ctx *cli.Context) (*models.Session, error) {
	s := &models.Session{Streams: models.ExampleStreams(), Params: models.DefaultParams()}
	applyParamFlags(ctx, s, false)
	return s, s.Validate()
}
