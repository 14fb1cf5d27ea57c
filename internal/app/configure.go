package app

import (
	"context"
	"runtime"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"extbuild/internal/core"
	"extbuild/internal/types"
)

// Configure discovers the requested packages (and boost, when asked
// for) and assembles the build plan for one extension module.
func (s Service) Configure(ctx context.Context, req ConfigureRequest) (ConfigureResult, error) {
	if strings.TrimSpace(req.Name) == "" {
		return ConfigureResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("extension name is required")
	}
	roots := core.ResolveRoots(req.SearchRoots)
	searcher := core.NewSearcher(roots)

	packages, boostWanted, boostRequirement := splitBoostRequirement(req.Packages)
	if len(req.BoostModules) > 0 {
		boostWanted = true
		if boostRequirement == "" {
			// Asking for boost libraries implies a boost dependency.
			boostRequirement = ">= 1.0"
		}
	}

	checked, err := core.CheckRequirements(ctx, packages, roots, s.PkgConfig)
	if err != nil {
		return ConfigureResult{}, err
	}

	planRequest := core.PlanRequest{
		Name:              req.Name,
		Version:           req.Version,
		Packages:          checked,
		OS:                targetOS(req.TargetOS),
		VersionedPrefixes: req.VersionedPrefixes,
		UserIncludeDirs:   req.IncludeDirs,
	}
	if boostWanted {
		info, err := core.DiscoverBoost(ctx, searcher, boostRequirement)
		if err != nil {
			return ConfigureResult{}, err
		}
		planRequest.Boost = &info
		if len(req.BoostModules) > 0 {
			libDir, libraries, err := core.BoostLibraries(ctx, searcher, info, req.BoostModules)
			if err != nil {
				return ConfigureResult{}, err
			}
			planRequest.BoostLibDir = libDir
			planRequest.BoostLibraries = libraries
		}
	}

	plan, err := core.ComposePlan(ctx, planRequest)
	if err != nil {
		return ConfigureResult{}, err
	}
	result := ConfigureResult{Plan: plan}
	if req.OutputPath != "" {
		if err := s.PlanWriter.Write(plan, req.OutputPath, types.PlanFormat(req.Format)); err != nil {
			return ConfigureResult{}, err
		}
		result.OutputPath = req.OutputPath
	}
	return result, nil
}

// splitBoostRequirement pulls a "boost" requirement out of the package
// list; boost is discovered through its headers rather than pkg-config.
// The returned fragment keeps only the comparator part ("boost >= 1.34"
// becomes ">= 1.34", bare "boost" becomes "").
func splitBoostRequirement(packages []string) ([]string, bool, string) {
	var rest []string
	found := false
	requirement := ""
	for _, pkg := range packages {
		trimmed := strings.TrimSpace(pkg)
		if strings.HasPrefix(strings.ToLower(trimmed), "boost") {
			found = true
			requirement = strings.TrimSpace(trimmed[len("boost"):])
			continue
		}
		rest = append(rest, pkg)
	}
	return rest, found, requirement
}

func targetOS(value string) types.TargetOS {
	if strings.TrimSpace(value) == "" {
		return types.TargetOS(runtime.GOOS)
	}
	return types.TargetOS(strings.ToLower(strings.TrimSpace(value)))
}
