// Package launcher issues the final debug-launch request with resolved
// parameters: the launch configuration path and a fixed engine identifier.
package launcher

import (
	"github.com/devlaunch/build-launch-handler/internal/constants"
	"github.com/go-kit/kit/log"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// DebugCommandClient submits one launch request to the external debug-launch
// command. Implementations must not wait for the debug session itself, only
// for the submission to be accepted.
type DebugCommandClient interface {
	Submit(ctx *log.Context, launchFilePath, engineID string) error
}

// Invoker formats debug-launch requests and hands them to its client. Fire
// and forget from the orchestrator's perspective: the debug session runs
// asynchronously and only submission failures surface here.
type Invoker struct {
	client   DebugCommandClient
	engineID string
}

// New builds an Invoker. An empty engineID selects the fixed default engine;
// an explicit override must be GUID-shaped or New rejects it.
func New(client DebugCommandClient, engineID string) (*Invoker, error) {
	if engineID == "" {
		engineID = constants.DefaultDebugEngineID
	}
	parsed, err := uuid.Parse(engineID)
	if err != nil {
		return nil, errors.Wrapf(err, "engine identifier %q is not a GUID", engineID)
	}
	return &Invoker{client: client, engineID: parsed.String()}, nil
}

// EngineID returns the normalized engine identifier this invoker submits.
func (i *Invoker) EngineID() string {
	return i.engineID
}

// Invoke submits a single debug-launch request for the given launch
// configuration file. No retry on failure.
func (i *Invoker) Invoke(ctx *log.Context, launchFilePath string) error {
	ctx.Log("message", "submitting debug launch request", "launchConfig", launchFilePath, "engine", i.engineID)
	return errors.Wrap(i.client.Submit(ctx, launchFilePath, i.engineID), "failed to submit debug launch request")
}
