// UnitBuildNotifier and BuildDoneNotifier manage observer registration for
// the per-unit and overall build completion streams. Registration is
// single-slot: registering a new observer replaces the previous one.
package observer

import (
	"sync"

	"github.com/devlaunch/build-launch-handler/internal/types"
)

type UnitBuildNotifier struct {
	observer UnitBuildObserver
	mu       sync.Mutex
}

func (n *UnitBuildNotifier) Register(o UnitBuildObserver) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.observer = o
}

func (n *UnitBuildNotifier) Unregister() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.observer = nil
}

func (n *UnitBuildNotifier) Notify(args types.UnitBuildEventArgs) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.observer != nil {
		return n.observer.OnUnitBuildCompleted(args)
	}

	return nil
}

type BuildDoneNotifier struct {
	observer BuildDoneObserver
	mu       sync.Mutex
}

func (n *BuildDoneNotifier) Register(o BuildDoneObserver) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.observer = o
}

func (n *BuildDoneNotifier) Unregister() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.observer = nil
}

func (n *BuildDoneNotifier) Notify(args types.OverallBuildEventArgs) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.observer != nil {
		return n.observer.OnOverallBuildCompleted(args)
	}

	return nil
}
