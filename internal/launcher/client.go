package launcher

import (
	"os/exec"

	"github.com/go-kit/kit/log"
	"github.com/pkg/errors"
)

// ---- test seams (override in *_test.go) ----
var fnStartCommand = func(command *exec.Cmd) error {
	if err := command.Start(); err != nil {
		return err
	}
	// Release the child; the debug session outlives this request.
	return command.Process.Release()
}

// ExecDebugCommandClient spawns the configured debug-launch command with the
// launch configuration path and engine identifier as arguments, then
// releases the process without waiting for the session to end.
type ExecDebugCommandClient struct {
	Command string
}

func (c ExecDebugCommandClient) Submit(ctx *log.Context, launchFilePath, engineID string) error {
	if c.Command == "" {
		return errors.New("no debug-launch command configured")
	}

	command := exec.Command(c.Command, "--launch-config", launchFilePath, "--engine", engineID)
	if err := fnStartCommand(command); err != nil {
		return errors.Wrapf(err, "could not start debug-launch command '%s'", c.Command)
	}

	ctx.Log("message", "debug-launch command started", "command", c.Command)
	return nil
}

// LaunchSubmission records one submitted request.
type LaunchSubmission struct {
	LaunchFilePath string
	EngineID       string
}

// TestDebugCommandClient records submissions instead of spawning anything.
type TestDebugCommandClient struct {
	Submissions []LaunchSubmission
	Err         error
}

func (c *TestDebugCommandClient) Submit(ctx *log.Context, launchFilePath, engineID string) error {
	c.Submissions = append(c.Submissions, LaunchSubmission{LaunchFilePath: launchFilePath, EngineID: engineID})
	return c.Err
}
