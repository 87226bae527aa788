package constants

const (
	// LaunchConfigFileName is the file whose presence marks a directory as
	// launchable. Only its existence is checked here; the content is consumed
	// by the debug-launch command.
	LaunchConfigFileName = "launch.json"

	// PrelaunchScriptFileName is the optional preparation script executed to
	// completion before a debug session starts. It is looked up only in the
	// directory that won the launch config resolution.
	PrelaunchScriptFileName = "prelaunch.bat"

	// DefaultDebugEngineID is the fixed engine identifier passed to the
	// debug-launch command alongside the launch config path.
	DefaultDebugEngineID = "541b8a8a-6081-4506-9f0a-1ce771debc04"

	// SettingsFileName is the host settings file, looked up in the solution
	// directory unless an explicit path is given.
	SettingsFileName = "buildlaunch.settings.json"

	// AlertTitle is the title supplied to the user-facing error surface when
	// arming fails.
	AlertTitle = "Build Launch"
)
