// Package buildsystem bridges an external build tool into the two build
// lifecycle event streams the watcher observes.
package buildsystem

import (
	"os"
	"os/exec"

	"github.com/devlaunch/build-launch-handler/internal/observer"
	"github.com/devlaunch/build-launch-handler/internal/types"
	"github.com/go-kit/kit/log"
	"github.com/pkg/errors"
)

// ---- test seams (override in *_test.go) ----
var fnRunBuild = func(command *exec.Cmd) error { return command.Run() }

// Starter starts a build for a named target. Implementations report the
// build's outcome through the event streams, never through the return value:
// a build that ran and failed is not an error, only a build that could not
// be started is.
type Starter interface {
	StartBuild(ctx *log.Context, target string) error
}

// ExecBuildSystem runs a configured build command to completion and then
// publishes one per-unit completion event followed by one overall completion
// event, preserving the ordering the watcher relies on.
type ExecBuildSystem struct {
	Command               string
	Args                  []string // extra arguments; the target is appended last
	Configuration         string
	Platform              string
	SolutionConfiguration string

	Unit    *observer.UnitBuildNotifier
	Overall *observer.BuildDoneNotifier
}

func (b ExecBuildSystem) StartBuild(ctx *log.Context, target string) error {
	if b.Command == "" {
		return errors.New("no build command configured")
	}

	args := append(append([]string{}, b.Args...), target)
	command := exec.Command(b.Command, args...)
	command.Stdout = os.Stdout
	command.Stderr = os.Stderr

	err := fnRunBuild(command)
	succeeded := err == nil
	if err != nil {
		if _, ok := err.(*exec.ExitError); !ok {
			return errors.Wrapf(err, "could not start build command '%s'", b.Command)
		}
	}
	ctx.Log("message", "build command finished", "target", target, "succeeded", succeeded)

	if notifyErr := b.Unit.Notify(types.UnitBuildEventArgs{
		Target:                target,
		Configuration:         b.Configuration,
		Platform:              b.Platform,
		SolutionConfiguration: b.SolutionConfiguration,
		Succeeded:             succeeded,
	}); notifyErr != nil {
		ctx.Log("message", "unit build observer failed", "error", notifyErr)
	}

	if notifyErr := b.Overall.Notify(types.OverallBuildEventArgs{
		Scope:  types.BuildScopeSolution,
		Action: types.BuildActionBuild,
	}); notifyErr != nil {
		ctx.Log("message", "overall build observer failed", "error", notifyErr)
	}

	return nil
}
