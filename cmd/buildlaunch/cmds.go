package main

import (
	"fmt"

	"github.com/devlaunch/build-launch-handler/internal/alert"
	"github.com/devlaunch/build-launch-handler/internal/buildsystem"
	"github.com/devlaunch/build-launch-handler/internal/constants"
	"github.com/devlaunch/build-launch-handler/internal/launcher"
	"github.com/devlaunch/build-launch-handler/internal/locator"
	"github.com/devlaunch/build-launch-handler/internal/observer"
	"github.com/devlaunch/build-launch-handler/internal/prelaunch"
	"github.com/devlaunch/build-launch-handler/internal/settings"
	"github.com/devlaunch/build-launch-handler/internal/watcher"
	"github.com/devlaunch/build-launch-handler/pkg/versionutil"
	"github.com/go-kit/kit/log"
	"github.com/pkg/errors"
)

type cmdFunc func(ctx *log.Context, hostSettings settings.HostSettings, args []string) error

type cmd struct {
	invoke        cmdFunc // associated function
	name          string  // human readable string
	needsSettings bool    // determines if the host settings file is loaded first
	failExitCode  int     // exitCode to use when commands fail
}

var (
	cmdArmAndBuild = cmd{armAndBuild, "ArmAndBuild", true, constants.FailedExitCodeGeneral}
	cmdLocate      = cmd{locateOnce, "Locate", true, constants.ExitCode_ConfigNotFound}
	cmdVersion     = cmd{version, "Version", false, constants.FailedExitCodeGeneral}

	cmds = map[string]cmd{
		"arm-and-build": cmdArmAndBuild,
		"locate":        cmdLocate,
		"version":       cmdVersion,
	}
)

// armAndBuild runs one full arm-to-fire cycle: resolve the launch config for
// the target, start the build, and wait for the launch decision.
func armAndBuild(ctx *log.Context, hostSettings settings.HostSettings, args []string) error {
	if len(args) != 1 {
		return errors.New("arm-and-build requires exactly one target identifier")
	}
	target := args[0]

	invoker, err := launcher.New(launcher.ExecDebugCommandClient{Command: hostSettings.DebugCommand}, hostSettings.EngineID)
	if err != nil {
		return err
	}

	unit := &observer.UnitBuildNotifier{}
	overall := &observer.BuildDoneNotifier{}

	w := watcher.New(watcher.Config{
		Logger: ctx,
		Prelaunch: prelaunch.Runner{
			TimeoutInSeconds: hostSettings.PrelaunchTimeoutInSeconds,
			NormalizeScript:  hostSettings.NormalizePrelaunchScript,
		},
		Invoker: invoker,
		Alerts:  alert.StderrPresenter{},
		Unit:    unit,
		Overall: overall,
	})
	w.Start()
	defer w.Close()

	if err := w.Arm(target, hostSettings.CandidateDirectories()); err != nil {
		return err
	}

	builder := buildsystem.ExecBuildSystem{
		Command:               hostSettings.BuildCommand,
		Args:                  hostSettings.BuildArgs,
		Configuration:         hostSettings.Configuration,
		Platform:              hostSettings.Platform,
		SolutionConfiguration: hostSettings.Configuration,
		Unit:                  unit,
		Overall:               overall,
	}
	if err := builder.StartBuild(ctx, target); err != nil {
		return err
	}

	// Exactly one result arrives per overall build completion.
	result := <-w.Results()
	if result.Err != nil {
		return result.Err
	}
	if !result.Launched {
		ctx.Log("message", "build completed without a launch", "target", target)
		return nil
	}
	ctx.Log("message", "debug launch submitted", "launchConfig", result.LaunchFilePath)
	return nil
}

// locateOnce resolves the launch config once and prints the result.
func locateOnce(ctx *log.Context, hostSettings settings.HostSettings, args []string) error {
	cfg, err := locator.Locate(ctx, hostSettings.CandidateDirectories())
	if err != nil {
		return err
	}
	fmt.Println(cfg.LaunchFilePath)
	if cfg.HasPrelaunchScript() {
		fmt.Println(cfg.PrelaunchScriptPath)
	}
	return nil
}

func version(ctx *log.Context, hostSettings settings.HostSettings, args []string) error {
	fmt.Println(versionutil.DetailedVersionString())
	return nil
}
