package types

// LaunchConfig is the resolved filesystem location of a launch configuration
// file and its optional preparation script. Immutable once resolved for a
// given arming; discarded after use or on abort.
type LaunchConfig struct {
	LaunchFilePath      string
	PrelaunchScriptPath string // empty when the winning directory has no prelaunch script
}

// HasPrelaunchScript reports whether a preparation script was found next to
// the launch configuration.
func (c LaunchConfig) HasPrelaunchScript() bool {
	return c.PrelaunchScriptPath != ""
}

// ArmedTarget is the single build unit currently eligible to trigger a
// launch. Exactly one may exist at a time; arming a new target overwrites
// the previous one. Armed implies a LaunchConfig has already been resolved.
type ArmedTarget struct {
	Target string
	Armed  bool
}

// LaunchResult is emitted on the watcher's results channel once per overall
// build handled while armed: either a launch was submitted, or it was
// suppressed, or the fire attempt failed.
type LaunchResult struct {
	Target         string
	LaunchFilePath string
	Launched       bool
	Err            error
}
