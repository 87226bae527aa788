package buildsystem

import (
	"os/exec"
	"testing"

	"github.com/devlaunch/build-launch-handler/internal/observer"
	"github.com/devlaunch/build-launch-handler/internal/types"
	"github.com/go-kit/kit/log"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type eventRecorder struct {
	sequence []string
	units    []types.UnitBuildEventArgs
	overall  []types.OverallBuildEventArgs
}

func (r *eventRecorder) OnUnitBuildCompleted(args types.UnitBuildEventArgs) error {
	r.sequence = append(r.sequence, "unit")
	r.units = append(r.units, args)
	return nil
}

func (r *eventRecorder) OnOverallBuildCompleted(args types.OverallBuildEventArgs) error {
	r.sequence = append(r.sequence, "overall")
	r.overall = append(r.overall, args)
	return nil
}

func newCtx() *log.Context {
	return log.NewContext(log.NewNopLogger())
}

func newSystem(rec *eventRecorder) ExecBuildSystem {
	unit := &observer.UnitBuildNotifier{}
	overall := &observer.BuildDoneNotifier{}
	unit.Register(rec)
	overall.Register(rec)
	return ExecBuildSystem{
		Command:       "/usr/bin/buildtool",
		Args:          []string{"-c", "Debug"},
		Configuration: "Debug",
		Platform:      "AnyCPU",
		Unit:          unit,
		Overall:       overall,
	}
}

func saveAndRestoreFns() func() {
	orig := fnRunBuild
	return func() { fnRunBuild = orig }
}

func TestStartBuild_SuccessPublishesUnitThenOverall(t *testing.T) {
	restore := saveAndRestoreFns()
	defer restore()
	fnRunBuild = func(*exec.Cmd) error { return nil }

	rec := &eventRecorder{}
	b := newSystem(rec)
	require.NoError(t, b.StartBuild(newCtx(), "ProjA"))

	require.Equal(t, []string{"unit", "overall"}, rec.sequence, "per-unit completion must be delivered before the overall completion")
	require.Len(t, rec.units, 1)
	require.Equal(t, "ProjA", rec.units[0].Target)
	require.Equal(t, "Debug", rec.units[0].Configuration)
	require.True(t, rec.units[0].Succeeded)
	require.Equal(t, types.BuildActionBuild, rec.overall[0].Action)
}

func TestStartBuild_ExitErrorIsAFailedBuildNotAnError(t *testing.T) {
	restore := saveAndRestoreFns()
	defer restore()
	fnRunBuild = func(*exec.Cmd) error { return &exec.ExitError{} }

	rec := &eventRecorder{}
	b := newSystem(rec)
	require.NoError(t, b.StartBuild(newCtx(), "ProjA"))

	require.Len(t, rec.units, 1)
	require.False(t, rec.units[0].Succeeded)
	require.Len(t, rec.overall, 1, "the overall event fires even for failed builds")
}

func TestStartBuild_SpawnFailure(t *testing.T) {
	restore := saveAndRestoreFns()
	defer restore()
	fnRunBuild = func(*exec.Cmd) error { return errors.New("executable not found") }

	rec := &eventRecorder{}
	b := newSystem(rec)
	err := b.StartBuild(newCtx(), "ProjA")
	require.Error(t, err)
	require.Empty(t, rec.sequence, "no events when the build could not be started")
}

func TestStartBuild_NoCommandConfigured(t *testing.T) {
	rec := &eventRecorder{}
	b := newSystem(rec)
	b.Command = ""
	require.Error(t, b.StartBuild(newCtx(), "ProjA"))
}

func TestStartBuild_TargetAppendedToArgs(t *testing.T) {
	restore := saveAndRestoreFns()
	defer restore()

	var gotArgs []string
	fnRunBuild = func(command *exec.Cmd) error {
		gotArgs = command.Args
		return nil
	}

	rec := &eventRecorder{}
	b := newSystem(rec)
	require.NoError(t, b.StartBuild(newCtx(), "ProjA"))
	require.Equal(t, []string{"/usr/bin/buildtool", "-c", "Debug", "ProjA"}, gotArgs)
}
