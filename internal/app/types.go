package app

import "extbuild/internal/types"

type ConfigureRequest struct {
	Name              string
	Version           string
	Packages          []string
	BoostModules      []string
	SearchRoots       []string
	TargetOS          string
	VersionedPrefixes []string
	IncludeDirs       []string
	OutputPath        string
	Format            string
}

type ConfigureResult struct {
	Plan       types.BuildPlan
	OutputPath string
}

type CheckRequest struct {
	Packages    []string
	SearchRoots []string
}

type CheckResult struct {
	Packages []types.PackageInfo
}

type LocateRequest struct {
	Kind        string
	Name        string
	Subpaths    []string
	Version     string
	SearchRoots []string
}

type LocateResult struct {
	Paths []string
}

type ReleaseRequest struct {
	LatestVersion string
	StableVersion string
	VersionFile   string
	DryRun        bool
}

type ReleaseResult struct {
	Tag     string
	Applied bool
}
