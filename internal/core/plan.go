package core

import (
	"context"
	"fmt"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"extbuild/internal/shared"
	"extbuild/internal/types"
)

// PlanRequest carries everything needed to assemble a build plan for
// one extension module. Packages must already have passed the
// requirement check; boost fields are zero when boost is not used.
type PlanRequest struct {
	Name              string
	Version           string
	Packages          []types.PackageInfo
	Boost             *types.BoostInfo
	BoostLibDir       string
	BoostLibraries    []string
	OS                types.TargetOS
	VersionedPrefixes []string
	UserIncludeDirs   []string
}

// SelfMacros generates the standard module identity macros from the
// dotted extension name. The entry point follows the CPython init
// naming scheme for the final component.
func SelfMacros(name string, version string) ([]types.Macro, error) {
	name = strings.TrimSpace(name)
	idx := strings.LastIndex(name, ".")
	if idx <= 0 || idx == len(name)-1 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("extension name must be a dotted pkg.mod path: %s", name))
	}
	prefix := name[:idx]
	module := name[idx+1:]
	macros := []types.Macro{
		{Name: "EXT_MODULE_PREFIX", Value: fmt.Sprintf("%q", prefix)},
		{Name: "EXT_MODULE_NAME", Value: fmt.Sprintf("%q", module)},
		{Name: "EXT_ENTRY_NAME", Value: "PyInit_" + module},
	}
	if version != "" {
		macros = append(macros, types.Macro{Name: "EXT_MODULE_VERSION", Value: fmt.Sprintf("%q", version)})
	}
	return macros, nil
}

// ComposePlan assembles the compiler/linker configuration for an
// extension from its checked packages and optional boost discovery.
func ComposePlan(ctx context.Context, req PlanRequest) (types.BuildPlan, error) {
	assert.NotEmpty(ctx, req.Name, "extension name must be set")
	assert.NotEmpty(ctx, string(req.OS), "target OS must be set")

	macros, err := SelfMacros(req.Name, req.Version)
	if err != nil {
		return types.BuildPlan{}, err
	}

	compileArgs := []string{"-std=c++11"}
	if req.OS == types.TargetOSDarwin {
		compileArgs = append(compileArgs, "-Wno-#warnings")
	}

	seenIncludes := map[string]struct{}{}
	for _, dir := range req.UserIncludeDirs {
		seenIncludes[dir] = struct{}{}
	}
	var includeDirs []string
	addInclude := func(dir string) {
		if _, ok := seenIncludes[dir]; ok {
			return
		}
		seenIncludes[dir] = struct{}{}
		compileArgs = append(compileArgs, "-isystem", dir)
		includeDirs = append(includeDirs, dir)
	}

	var libraryDirs []string
	var libraries []string

	if req.Boost != nil {
		addInclude(req.Boost.IncludeDir)
		if len(req.BoostLibraries) > 0 {
			libraryDirs = append(libraryDirs, req.BoostLibDir)
			libraries = append(libraries, req.BoostLibraries...)
		}
	}

	for _, pkg := range req.Packages {
		macros = append(macros, pkg.Macros...)
		for _, dir := range pkg.IncludeDirs {
			addInclude(dir)
		}
		libraryDirs = append(libraryDirs, pkg.LibraryDirs...)
		linked, err := linkedLibraries(pkg, req.OS, req.VersionedPrefixes)
		if err != nil {
			return types.BuildPlan{}, err
		}
		libraries = append(libraries, linked...)
	}

	plan := types.BuildPlan{
		Name:        req.Name,
		Language:    "c++",
		Macros:      uniqMacros(macros),
		CompileArgs: compileArgs,
		IncludeDirs: includeDirs,
		LibraryDirs: shared.Uniq(libraryDirs),
		Libraries:   shared.Uniq(libraries),
	}
	if req.OS == types.TargetOSLinux {
		plan.RuntimeLibDirs = plan.LibraryDirs
	}
	log.Ctx(ctx).Debug().
		Str("extension", plan.Name).
		Int("packages", len(req.Packages)).
		Int("libraries", len(plan.Libraries)).
		Msg("build plan composed")
	return plan, nil
}

// linkedLibraries maps a package's libraries to the names handed to
// the linker. Packages matching a versioned-link prefix are bound to
// the exact versioned artifact so side-by-side installations cannot be
// picked up by accident.
func linkedLibraries(pkg types.PackageInfo, targetOS types.TargetOS, versionedPrefixes []string) ([]string, error) {
	if !matchesVersionedPrefix(pkg.Name, versionedPrefixes) {
		return pkg.Libraries, nil
	}
	var linked []string
	for _, library := range pkg.Libraries {
		switch targetOS {
		case types.TargetOSLinux:
			linked = append(linked, fmt.Sprintf(":lib%s.so.%s", library, pkg.Version))
		case types.TargetOSDarwin:
			linked = append(linked, fmt.Sprintf("%s.%s", library, pkg.Version))
		default:
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("versioned linking supports only linux and darwin, not %s", targetOS))
		}
	}
	return linked, nil
}

func matchesVersionedPrefix(name string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if prefix != "" && strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func uniqMacros(macros []types.Macro) []types.Macro {
	seen := map[types.Macro]struct{}{}
	var result []types.Macro
	for _, macro := range macros {
		if _, ok := seen[macro]; ok {
			continue
		}
		seen[macro] = struct{}{}
		result = append(result, macro)
	}
	return result
}
