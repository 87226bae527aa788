// Package settings loads the host settings file that wires the orchestrator
// to a concrete workspace: candidate directories, the build command and the
// debug-launch command. The file is schema-validated before use.
package settings

import (
	"encoding/json"
	"io/ioutil"

	"github.com/go-kit/kit/log"
	"github.com/pkg/errors"
)

var fnReadFile = ioutil.ReadFile

// HostSettings describes one orchestration session. The launch configuration
// itself is never parsed; these settings only point at the directories it
// may live in and at the external commands.
type HostSettings struct {
	SolutionDir               string   `json:"solutionDir"`
	ProjectDir                string   `json:"projectDir"`
	BuildCommand              string   `json:"buildCommand"`
	BuildArgs                 []string `json:"buildArgs"`
	Configuration             string   `json:"configuration"`
	Platform                  string   `json:"platform"`
	DebugCommand              string   `json:"debugCommand"`
	EngineID                  string   `json:"engineId"`
	PrelaunchTimeoutInSeconds int      `json:"prelaunchTimeoutInSeconds"`
	NormalizePrelaunchScript  bool     `json:"normalizePrelaunchScript"`
}

// CandidateDirectories returns the launch config search order: solution
// directory before project directory, so solution-level overrides win.
func (s HostSettings) CandidateDirectories() []string {
	var dirs []string
	if s.SolutionDir != "" {
		dirs = append(dirs, s.SolutionDir)
	}
	if s.ProjectDir != "" {
		dirs = append(dirs, s.ProjectDir)
	}
	return dirs
}

// Load reads and validates the settings file at path.
func Load(ctx *log.Context, path string) (HostSettings, error) {
	var s HostSettings

	data, err := fnReadFile(path)
	if err != nil {
		return s, errors.Wrapf(err, "failed to read settings file '%s'", path)
	}

	if err := validateHostSettings(string(data)); err != nil {
		return s, err
	}

	if err := json.Unmarshal(data, &s); err != nil {
		return s, errors.Wrap(err, "failed to parse settings file")
	}

	ctx.Log("message", "loaded host settings", "path", path)
	return s, nil
}
