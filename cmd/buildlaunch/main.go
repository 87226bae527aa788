package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/devlaunch/build-launch-handler/internal/constants"
	"github.com/devlaunch/build-launch-handler/internal/locator"
	"github.com/devlaunch/build-launch-handler/internal/settings"
	"github.com/devlaunch/build-launch-handler/pkg/versionutil"
	"github.com/go-kit/kit/log"
	"github.com/pkg/errors"
)

// settingsPathEnvName points at the host settings file; when unset the file
// is looked up in the current directory.
const settingsPathEnvName = "BUILDLAUNCH_SETTINGS"

func main() {
	ctx := log.NewContext(log.NewSyncLogger(log.NewLogfmtLogger(
		os.Stdout))).With("time", log.DefaultTimestamp).With("version", versionutil.VersionString())

	// parse command line arguments
	cmd, args := parseCmd(os.Args)
	ctx = ctx.With("operation", strings.ToLower(cmd.name))

	var hostSettings settings.HostSettings
	if cmd.needsSettings {
		var err error
		hostSettings, err = settings.Load(ctx, settingsPath())
		if err != nil {
			ctx.Log("message", "failed to load host settings", "error", err)
			os.Exit(constants.ExitCode_SettingsInvalid)
		}
	}

	ctx.Log("event", "start")
	if err := cmd.invoke(ctx, hostSettings, args); err != nil {
		ctx.Log("event", "failed to handle", "error", err)
		os.Exit(exitCodeFor(cmd, err))
	}
	ctx.Log("event", "end")
}

func settingsPath() string {
	if path := os.Getenv(settingsPathEnvName); path != "" {
		return path
	}
	return filepath.Join(".", constants.SettingsFileName)
}

func exitCodeFor(c cmd, err error) int {
	if errors.Cause(err) == locator.ErrConfigNotFound {
		return constants.ExitCode_ConfigNotFound
	}
	return c.failExitCode
}

// parseCmd looks at os.Args and parses the subcommand. If it is invalid,
// it prints the usage string and an error message and exits.
func parseCmd(args []string) (cmd, []string) {
	if len(args) < 2 {
		printUsage(args)
		fmt.Println("Incorrect usage.")
		os.Exit(2)
	}
	op := args[1]
	c, ok := cmds[op]
	if !ok {
		printUsage(args)
		fmt.Printf("Incorrect command: %q\n", op)
		os.Exit(2)
	}
	return c, args[2:]
}

// printUsage prints the help string and version of the program to stdout with a
// trailing new line.
func printUsage(args []string) {
	fmt.Printf("Usage: %s ", os.Args[0])
	i := 0
	for k := range cmds {
		fmt.Printf(k)
		if i != len(cmds)-1 {
			fmt.Printf("|")
		}
		i++
	}
	fmt.Println()
	fmt.Println(versionutil.DetailedVersionString())
}
