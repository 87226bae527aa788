package prelaunch

import (
	"io/ioutil"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/go-kit/kit/log"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func newCtx() *log.Context {
	return log.NewContext(log.NewNopLogger())
}

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prelaunch.bat")
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0755))
	return path
}

func saveAndRestoreFns() func() {
	origRun := fnRunCommand
	origNormalize := fnNormalize
	return func() {
		fnRunCommand = origRun
		fnNormalize = origNormalize
	}
}

func TestRun_Success(t *testing.T) {
	restore := saveAndRestoreFns()
	defer restore()

	script := writeScript(t, "#!/bin/sh\nexit 0\n")
	exitCode, err := Runner{}.Run(newCtx(), script)
	require.NoError(t, err)
	require.Equal(t, 0, exitCode)
}

func TestRun_NonzeroExitIsNotAnError(t *testing.T) {
	restore := saveAndRestoreFns()
	defer restore()

	script := writeScript(t, "#!/bin/sh\nexit 7\n")
	exitCode, err := Runner{}.Run(newCtx(), script)
	require.NoError(t, err, "a script that ran and failed must not be an error")
	require.Equal(t, 7, exitCode)
}

func TestRun_SpawnFailure(t *testing.T) {
	restore := saveAndRestoreFns()
	defer restore()

	missing := filepath.Join(t.TempDir(), "prelaunch.bat")
	_, err := Runner{}.Run(newCtx(), missing)
	require.Error(t, err)
}

func TestRun_RunsInScriptDirectory(t *testing.T) {
	restore := saveAndRestoreFns()
	defer restore()

	var gotDir string
	fnRunCommand = func(command *exec.Cmd) error {
		gotDir = command.Dir
		return nil
	}

	script := writeScript(t, "#!/bin/sh\n")
	_, err := Runner{}.Run(newCtx(), script)
	require.NoError(t, err)
	require.Equal(t, filepath.Dir(script), gotDir)
}

func TestRun_NormalizesTextScriptWhenEnabled(t *testing.T) {
	restore := saveAndRestoreFns()
	defer restore()

	normalized := ""
	fnNormalize = func(path string) error {
		normalized = path
		return nil
	}
	fnRunCommand = func(*exec.Cmd) error { return nil }

	script := writeScript(t, "#!/bin/sh\r\nexit 0\r\n")
	_, err := Runner{NormalizeScript: true}.Run(newCtx(), script)
	require.NoError(t, err)
	require.Equal(t, script, normalized)
}

func TestRun_NormalizationFailureDoesNotBlockExecution(t *testing.T) {
	restore := saveAndRestoreFns()
	defer restore()

	fnNormalize = func(string) error { return errors.New("read-only filesystem") }
	ran := false
	fnRunCommand = func(*exec.Cmd) error {
		ran = true
		return nil
	}

	script := writeScript(t, "#!/bin/sh\n")
	_, err := Runner{NormalizeScript: true}.Run(newCtx(), script)
	require.NoError(t, err)
	require.True(t, ran, "script should still run when normalization fails")
}

func TestRun_NoNormalizationByDefault(t *testing.T) {
	restore := saveAndRestoreFns()
	defer restore()

	fnNormalize = func(string) error {
		t.Fatal("normalization should not run unless enabled")
		return nil
	}
	fnRunCommand = func(*exec.Cmd) error { return nil }

	script := writeScript(t, "#!/bin/sh\n")
	_, err := Runner{}.Run(newCtx(), script)
	require.NoError(t, err)
}
