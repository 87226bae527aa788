// Package observer carries the two build lifecycle event streams between the
// build system and the watcher. Each stream has a single observer slot
// managed by its notifier.
package observer

import "github.com/devlaunch/build-launch-handler/internal/types"

type UnitBuildObserver interface {
	// OnUnitBuildCompleted is called once per built unit within an overall build
	OnUnitBuildCompleted(types.UnitBuildEventArgs) error
}

type BuildDoneObserver interface {
	// OnOverallBuildCompleted is called once per overall build, after all
	// per-unit completions for that build have been delivered
	OnOverallBuildCompleted(types.OverallBuildEventArgs) error
}
