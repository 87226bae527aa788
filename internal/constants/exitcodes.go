package constants

const (
	// Exit codes
	ExitCode_Okay = 0

	// General failed exit code when a launch cycle fails due to host errors.
	FailedExitCodeGeneral = -1

	// Arming errors:
	ExitCode_ConfigNotFound  = -11
	ExitCode_SettingsInvalid = -12
)
