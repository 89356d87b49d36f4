package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/minio/cli"
)

// FlagToJSON converts a flag to a representation that can be reversed into the flag.
func FlagToJSON(ctx *cli.Context, flag cli.Flag) (string, error) {
	name := FlagName(flag)
	if !IsSet(ctx, flag) {
		return "", nil
	}
	switch flag.(type) {
	case cli.StringFlag:
		return ctx.String(name), nil
	case cli.BoolFlag:
		return fmt.Sprint(ctx.Bool(name)), nil
	case cli.IntFlag:
		return fmt.Sprint(ctx.Int(name)), nil
	case cli.Float64Flag:
		return fmt.Sprint(ctx.Float64(name)), nil
	case cli.StringSliceFlag:
		return strings.Join(ctx.StringSlice(name), ","), nil
	default:
		return "", fmt.Errorf("unhandled flag type: %T", flag)
	}
}

// FlagName is the long name of a flag declared as "long, l".
func FlagName(flag cli.Flag) string {
	return FlagNames(flag)[0]
}

// FlagNames every name a flag is declared with, long name first.
func FlagNames(flag cli.Flag) []string {
	parts := strings.Split(flag.GetName(), ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// IsSet reports whether flag was given under any of its names, on the
// command or before it. The context only marks the name actually typed.
func IsSet(ctx *cli.Context, flag cli.Flag) bool {
	for _, name := range FlagNames(flag) {
		if ctx.IsSet(name) || ctx.GlobalIsSet(name) {
			return true
		}
	}
	return false
}

// CommandLine attempts to reconstruct the commandline.
func CommandLine(ctx *cli.Context) string {
	s := os.Args[0] + " " + ctx.Command.Name
	for _, flag := range ctx.Command.Flags {
		name := FlagName(flag)
		if _, ok := flag.(cli.StringSliceFlag); ok && IsSet(ctx, flag) {
			for _, v := range ctx.StringSlice(name) {
				s += " --" + name + "=" + v
			}
			continue
		}
		val, err := FlagToJSON(ctx, flag)
		if err != nil || val == "" {
			continue
		}
		s += " --" + name + "=" + val
	}
	return s
}
