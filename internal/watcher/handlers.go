package watcher

import (
	"fmt"
	"sync"

	"github.com/devlaunch/build-launch-handler/internal/constants"
	"github.com/devlaunch/build-launch-handler/internal/locator"
	"github.com/devlaunch/build-launch-handler/internal/observer"
	"github.com/devlaunch/build-launch-handler/internal/types"
	"github.com/pkg/errors"
)

// locate seam (override in *_test.go)
var fnLocate = locator.Locate

// Subscription ties the watcher to the two build event streams. Close
// detaches it. The reference host subscribed once and never detached;
// detachment exists here so the owner can shut down cleanly.
type Subscription struct {
	unit    *observer.UnitBuildNotifier
	overall *observer.BuildDoneNotifier
	once    sync.Once
}

func (s *Subscription) Close() {
	s.once.Do(func() {
		s.unit.Unregister()
		s.overall.Unregister()
	})
}

// Arm resolves the launch configuration for target from the candidate
// directories (highest precedence first) and makes target the single armed
// build unit. On the first successful arming the watcher attaches to the
// event streams; re-arming overwrites the armed slot. Arming does not start
// a build; that is the caller's responsibility after Arm returns nil.
//
// Re-arming while a build is already in flight is a documented caller error:
// the stale build's completion would be judged against the new target.
func (w *Watcher) Arm(target string, candidateDirs []string) error {
	var armErr error
	if err := w.call(func() { armErr = w.arm(target, candidateDirs) }); err != nil {
		return err
	}
	return armErr
}

func (w *Watcher) arm(target string, candidateDirs []string) error {
	cfg, err := fnLocate(w.ctx, candidateDirs)
	if err != nil {
		if errors.Cause(err) == locator.ErrConfigNotFound && w.alerts != nil {
			message := fmt.Sprintf("Cannot launch %s: no %s found in the solution or project directory.", target, constants.LaunchConfigFileName)
			if presentErr := w.alerts.Present(w.ctx, constants.AlertTitle, message); presentErr != nil {
				w.ctx.Log("message", "failed to present config-not-found alert", "error", presentErr)
			}
		}
		return err
	}

	w.attach()
	w.config = cfg
	w.armed = types.ArmedTarget{Target: target, Armed: true}
	w.pendingSuccess = false
	w.ctx.Log("message", "armed for launch", "target", target, "launchConfig", cfg.LaunchFilePath)
	return nil
}

// Attach registers the watcher against its event streams without arming.
// Idempotent: later calls return the existing subscription.
func (w *Watcher) Attach() (*Subscription, error) {
	var sub *Subscription
	if err := w.call(func() { sub = w.attach() }); err != nil {
		return nil, err
	}
	return sub, nil
}

func (w *Watcher) attach() *Subscription {
	if w.subscription == nil {
		w.unitStream.Register(w)
		w.overallStream.Register(w)
		w.subscription = &Subscription{unit: w.unitStream, overall: w.overallStream}
	}
	return w.subscription
}

// OnUnitBuildCompleted records whether the most recent completion of the
// armed target succeeded. Fires potentially many times per overall build;
// later events overwrite earlier ones, so only the last per-unit result
// before the overall completion matters.
func (w *Watcher) OnUnitBuildCompleted(args types.UnitBuildEventArgs) error {
	return w.call(func() {
		w.pendingSuccess = w.armed.Armed && args.Target == w.armed.Target && args.Succeeded
	})
}

// OnOverallBuildCompleted decides the launch. Fires once per overall build.
// The armed slot is cleared before any launch work, so every launch requires
// a fresh Arm call and a second overall completion can never fire again.
func (w *Watcher) OnOverallBuildCompleted(args types.OverallBuildEventArgs) error {
	return w.call(func() { w.handleOverallBuildCompleted(args) })
}

func (w *Watcher) handleOverallBuildCompleted(args types.OverallBuildEventArgs) {
	fire := w.pendingSuccess
	target := w.armed.Target
	cfg := w.config

	w.pendingSuccess = false
	w.armed = types.ArmedTarget{}
	w.config = types.LaunchConfig{}

	if !fire {
		w.ctx.Log("message", "build completed without launch", "scope", args.Scope, "action", args.Action, "target", target)
		w.emit(types.LaunchResult{Target: target})
		return
	}

	if !cfg.HasPrelaunchScript() {
		w.finishLaunch(target, cfg)
		return
	}

	// The prelaunch wait must not stall the dispatch goroutine; hand it to a
	// worker and resume with the launch once the script has fully exited.
	w.prelaunchWorkers.Increment()
	spawnFn(func() {
		defer w.prelaunchWorkers.Decrement()

		exitCode, err := w.prelaunch.Run(w.ctx, cfg.PrelaunchScriptPath)
		if err != nil {
			w.emit(types.LaunchResult{
				Target:         target,
				LaunchFilePath: cfg.LaunchFilePath,
				Err:            errors.Wrap(err, "prelaunch script could not be started"),
			})
			return
		}

		// The exit status is deliberately not inspected: a script that ran
		// and failed launches the same as one that succeeded.
		w.ctx.Log("message", "prelaunch script finished", "script", cfg.PrelaunchScriptPath, "exitCode", exitCode)

		if postErr := w.post(func() { w.finishLaunch(target, cfg) }); postErr != nil {
			w.emit(types.LaunchResult{Target: target, LaunchFilePath: cfg.LaunchFilePath, Err: postErr})
		}
	})
}

func (w *Watcher) finishLaunch(target string, cfg types.LaunchConfig) {
	if err := w.invoker.Invoke(w.ctx, cfg.LaunchFilePath); err != nil {
		w.emit(types.LaunchResult{Target: target, LaunchFilePath: cfg.LaunchFilePath, Err: err})
		return
	}
	w.emit(types.LaunchResult{Target: target, LaunchFilePath: cfg.LaunchFilePath, Launched: true})
}
