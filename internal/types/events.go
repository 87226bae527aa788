package types

// BuildScope identifies how much of the workspace an overall build covered.
type BuildScope string

const (
	BuildScopeSolution BuildScope = "solution"
	BuildScopeProject  BuildScope = "project"
)

// BuildAction identifies what kind of build request completed.
type BuildAction string

const (
	BuildActionBuild   BuildAction = "build"
	BuildActionRebuild BuildAction = "rebuild"
	BuildActionClean   BuildAction = "clean"
	BuildActionDeploy  BuildAction = "deploy"
)

// UnitBuildEventArgs describes the completion of one build unit within an
// overall build. Delivered once per built unit, before the overall
// completion event for the same build. Consumed once, never stored.
type UnitBuildEventArgs struct {
	Target                string
	Configuration         string
	Platform              string
	SolutionConfiguration string
	Succeeded             bool
}

// OverallBuildEventArgs marks the end of an entire build request, as opposed
// to completion of one constituent unit within it. Delivered once per build.
type OverallBuildEventArgs struct {
	Scope  BuildScope
	Action BuildAction
}
