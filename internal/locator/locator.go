// Package locator resolves the filesystem paths of the launch configuration
// and optional prelaunch script for a build target.
package locator

import (
	"os"
	"path/filepath"

	"github.com/devlaunch/build-launch-handler/internal/constants"
	"github.com/devlaunch/build-launch-handler/internal/types"
	"github.com/go-kit/kit/log"
	"github.com/pkg/errors"
)

var fnStat = os.Stat

// ErrConfigNotFound is returned when no candidate directory contains the
// launch configuration file.
var ErrConfigNotFound = errors.New("no candidate directory contains " + constants.LaunchConfigFileName)

// Locate checks each candidate directory in order, highest precedence first
// (solution directory before project directory), for the launch
// configuration file. The first directory containing one wins; later
// directories are not inspected. The prelaunch script is looked up only in
// the winning directory. Locate is a pure function of filesystem state at
// call time; results are never cached because directory contents may change
// between builds.
func Locate(ctx *log.Context, candidateDirs []string) (types.LaunchConfig, error) {
	for _, dir := range candidateDirs {
		if dir == "" {
			continue
		}

		launchPath := filepath.Join(dir, constants.LaunchConfigFileName)
		if !fileExists(launchPath) {
			continue
		}

		cfg := types.LaunchConfig{LaunchFilePath: launchPath}
		scriptPath := filepath.Join(dir, constants.PrelaunchScriptFileName)
		if fileExists(scriptPath) {
			cfg.PrelaunchScriptPath = scriptPath
		}

		ctx.Log("message", "resolved launch config", "path", launchPath, "hasPrelaunchScript", cfg.HasPrelaunchScript())
		return cfg, nil
	}

	return types.LaunchConfig{}, errors.Wrapf(ErrConfigNotFound, "checked %d directories", len(candidateDirs))
}

func fileExists(path string) bool {
	info, err := fnStat(path)
	return err == nil && !info.IsDir()
}
