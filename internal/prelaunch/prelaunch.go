// Package prelaunch executes the preparation script found next to the launch
// configuration. The script runs to completion before the debug session is
// requested.
package prelaunch

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/devlaunch/build-launch-handler/pkg/scriptutil"
	"github.com/go-kit/kit/log"
	"github.com/pkg/errors"
)

// ---- test seams (override in *_test.go) ----
var (
	fnRunCommand = func(command *exec.Cmd) error { return command.Run() }
	fnNormalize  = scriptutil.NormalizeScriptFile
)

// Runner spawns a prelaunch script and waits synchronously for the process
// to terminate.
type Runner struct {
	// TimeoutInSeconds bounds the wait for the script. Zero means wait
	// forever, which matches the reference behavior.
	TimeoutInSeconds int

	// NormalizeScript rewrites BOM and DOS line endings in text scripts
	// before execution so Windows-authored scripts run under a POSIX shell.
	NormalizeScript bool
}

// Run executes the script at scriptPath with inherited standard streams
// (stdin stays attached so the script can prompt interactively) and waits
// for termination. The exit code is returned but deliberately not
// interpreted: a script that runs and fails is treated the same as one that
// succeeds. Only a failure to create the process is an error.
func (r Runner) Run(ctx *log.Context, scriptPath string) (int, error) {
	if r.NormalizeScript {
		if ok, err := scriptutil.IsTextScript(scriptPath); err == nil && ok {
			if err := fnNormalize(scriptPath); err != nil {
				ctx.Log("message", "prelaunch script normalization skipped", "error", err)
			}
		}
	}

	var command *exec.Cmd
	if r.TimeoutInSeconds > 0 {
		commandContext, cancel := context.WithTimeout(context.Background(), time.Duration(r.TimeoutInSeconds)*time.Second)
		defer cancel()
		command = exec.CommandContext(commandContext, scriptPath)
		ctx.Log("message", "executing prelaunch script with TimeoutInSeconds="+strconv.Itoa(r.TimeoutInSeconds), "script", scriptPath)
	} else {
		command = exec.Command(scriptPath)
		ctx.Log("message", "executing prelaunch script", "script", scriptPath)
	}

	command.Dir = filepath.Dir(scriptPath)
	command.Stdin = os.Stdin
	command.Stdout = os.Stdout
	command.Stderr = os.Stderr

	err := fnRunCommand(command)
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			if status, ok := exitErr.Sys().(syscall.WaitStatus); ok {
				// The script ran and exited nonzero (or was signaled on
				// timeout). Either way the process has terminated, which is
				// all a launch cycle waits for.
				ctx.Log("message", "prelaunch script exited nonzero", "exitCode", status.ExitStatus())
				return status.ExitStatus(), nil
			}
		}
		return 0, errors.Wrapf(err, "failed to run prelaunch script '%s'", scriptPath)
	}

	return 0, nil
}
