package settings

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/go-kit/kit/log"
	"github.com/stretchr/testify/require"
)

func newCtx() *log.Context {
	return log.NewContext(log.NewNopLogger())
}

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "buildlaunch.settings.json")
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_FullSettings(t *testing.T) {
	path := writeSettings(t, `{
		"solutionDir": "/work/sln",
		"projectDir": "/work/sln/proj",
		"buildCommand": "/usr/bin/buildtool",
		"buildArgs": ["-c", "Debug"],
		"configuration": "Debug",
		"platform": "AnyCPU",
		"debugCommand": "/usr/bin/debug-adapter",
		"engineId": "541b8a8a-6081-4506-9f0a-1ce771debc04",
		"prelaunchTimeoutInSeconds": 30,
		"normalizePrelaunchScript": true
	}`)

	s, err := Load(newCtx(), path)
	require.NoError(t, err)
	require.Equal(t, "/work/sln", s.SolutionDir)
	require.Equal(t, []string{"-c", "Debug"}, s.BuildArgs)
	require.Equal(t, 30, s.PrelaunchTimeoutInSeconds)
	require.True(t, s.NormalizePrelaunchScript)
}

func TestLoad_UnknownPropertyRejected(t *testing.T) {
	path := writeSettings(t, `{"solutionDir": "/work/sln", "launchArgs": ["x"]}`)

	_, err := Load(newCtx(), path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid host settings JSON")
}

func TestLoad_WrongTypeRejected(t *testing.T) {
	path := writeSettings(t, `{"prelaunchTimeoutInSeconds": "thirty"}`)

	_, err := Load(newCtx(), path)
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(newCtx(), filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeSettings(t, `{"solutionDir": `)
	_, err := Load(newCtx(), path)
	require.Error(t, err)
}

func TestCandidateDirectories_SolutionBeforeProject(t *testing.T) {
	s := HostSettings{SolutionDir: "/work/sln", ProjectDir: "/work/sln/proj"}
	require.Equal(t, []string{"/work/sln", "/work/sln/proj"}, s.CandidateDirectories())
}

func TestCandidateDirectories_SkipsEmptyEntries(t *testing.T) {
	s := HostSettings{ProjectDir: "/work/sln/proj"}
	require.Equal(t, []string{"/work/sln/proj"}, s.CandidateDirectories())

	require.Empty(t, HostSettings{}.CandidateDirectories())
}
