package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"sdcalc/config"
	"sdcalc/pkg"
	"sdcalc/pkg/logger"

	"github.com/cheggaaa/pb"
	"github.com/minio/cli"
	"github.com/minio/mc/pkg/probe"
	"github.com/minio/pkg/console"
	"github.com/minio/pkg/trie"
	"github.com/minio/pkg/words"
	completeinstall "github.com/posener/complete/cmd/install"
)

// Main starts sdcalc
func Main(args []string) {
	if len(args) > 1 {
		switch args[1] {
		case config.AppName, filepath.Base(args[0]):
			mainComplete()
			return
		}
	}

	probe.Init()
	probe.SetAppInfo("Release-Tag", pkg.ReleaseTag)
	probe.SetAppInfo("Commit", pkg.ShortCommitID)

	// No terminal, no colors.
	if _, e := pb.GetTerminalWidth(); e != nil {
		config.GlobalNoColor = true
	}

	if err := registerApp(filepath.Base(args[0]), appCmds).Run(args); err != nil {
		os.Exit(1)
	}
}

var appCmds = []cli.Command{
	calcCmd,
	exampleCmd,
	cardsCmd,
}

func combineFlags(flags ...[]cli.Flag) []cli.Flag {
	var dst []cli.Flag
	for _, fl := range flags {
		dst = append(dst, fl...)
	}
	return dst
}

// registered commands, and their names for suggestions
var (
	commands     []cli.Command
	commandsTree = trie.NewTrie()
)

func registerCmd(cmd cli.Command) {
	commands = append(commands, cmd)
	commandsTree.Insert(cmd.Name)
}

func registerApp(name string, appCmds []cli.Command) *cli.App {
	for _, cmd := range appCmds {
		registerCmd(cmd)
	}

	cli.HelpFlag = cli.BoolFlag{
		Name:  "help, h",
		Usage: "show help",
	}

	var stopProfiles func()
	app := cli.NewApp()
	app.Name = name
	app.Usage = "Dashcam microSD card capacity & TBW calculator.\n\tDescribe each recording stream and get writes per day/year, the endurance to look for and a card size."
	app.Version = pkg.Version + " - " + pkg.ShortCommitID
	app.Compiled, _ = time.Parse(time.RFC3339, pkg.ReleaseTime)
	app.HideHelpCommand = true
	app.EnableBashCompletion = true
	app.Commands = commands
	app.Flags = combineFlags(profileFlags, globalFlags)
	app.CommandNotFound = commandNotFound
	app.Action = func(ctx *cli.Context) {
		if flagSet(ctx, "autocompletion") {
			installAutoCompletion()
			return
		}
		cli.ShowAppHelp(ctx)
	}
	app.Before = func(ctx *cli.Context) error {
		stopProfiles = startProfiles(ctx)
		return nil
	}
	app.After = func(ctx *cli.Context) error {
		if stopProfiles != nil {
			stopProfiles()
		}
		return nil
	}
	app.ExtraInfo = func() map[string]string {
		if config.GlobalDebug {
			return systemInfo()
		}
		return map[string]string{}
	}
	return app
}

func installAutoCompletion() {
	if runtime.GOOS == "windows" {
		console.Infoln("shell completion is not supported on windows")
		return
	}

	bin := filepath.Base(os.Args[0])
	if completeinstall.IsInstalled(bin) || completeinstall.IsInstalled(config.AppName) {
		console.Infoln(config.AppName + " completion is already in your '$SHELLRC'")
		return
	}
	err := completeinstall.Install(bin)
	logger.FatalIf(probe.NewError(err), "Unable to install shell completion.")
	console.Infoln(config.AppName + " completion added to '$SHELLRC', restart your shell to use it.")
}

// systemInfo is shown under the help of a --debug run.
func systemInfo() map[string]string {
	host, e := os.Hostname()
	logger.FatalIf(probe.NewError(e), "Unable to determine the hostname.")

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	return map[string]string{
		"PLATFORM": fmt.Sprintf("Host: %s | OS: %s | Arch: %s", host, runtime.GOOS, runtime.GOARCH),
		"RUNTIME":  fmt.Sprintf("Version: %s | CPUs: %d", runtime.Version(), runtime.NumCPU()),
		"MEM": fmt.Sprintf("Heap: %s | Sys: %s",
			pb.Format(int64(mem.HeapAlloc)).To(pb.U_BYTES),
			pb.Format(int64(mem.Sys)).To(pb.U_BYTES)),
	}
}

// commandNotFound fails with the closest command names as hints.
func commandNotFound(ctx *cli.Context, command string) {
	var msg strings.Builder
	fmt.Fprintf(&msg, "`%s` is not a %s command. See `%s --help`.", command, config.AppName, config.AppName)
	if closest := findClosestCommands(command); len(closest) > 0 {
		msg.WriteString("\n\nDid you mean one of these?")
		for _, cmd := range closest {
			fmt.Fprintf(&msg, "\n        `%s`", cmd)
		}
	}
	logger.FatalIf(errDummy().Trace(command), msg.String())
}

// findClosestCommands returns the commands starting with command, then
// those at most one typo away from it.
func findClosestCommands(command string) []string {
	closest := commandsTree.PrefixMatch(command)
	sort.Strings(closest)
	seen := make(map[string]bool, len(closest))
	for _, c := range closest {
		seen[c] = true
	}
	for _, value := range commandsTree.Walk(commandsTree.Root()) {
		if !seen[value] && words.DamerauLevenshteinDistance(command, value) < 2 {
			seen[value] = true
			closest = append(closest, value)
		}
	}
	return closest
}
