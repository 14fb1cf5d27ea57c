package core

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"extbuild/internal/types"
)

// boostIncludeSubpaths covers plain installs (include/boost) and
// versioned layouts such as include/boost-1_55/boost.
var boostIncludeSubpaths = []string{"boost", "boost?*", "boost?*/boost"}

// boostVersionExpr matches the BOOST_VERSION macro in version.hpp. The
// single integer encodes major*100000 + minor*100 + patch.
const boostVersionExpr = `^#\s*define\s+BOOST_VERSION\s+(\d+)\s*$`

// DiscoverBoost locates the Boost headers under the searcher's roots,
// decodes the version macro, and validates the optional requirement
// fragment (e.g. ">= 1.34") with loose comparison.
func DiscoverBoost(ctx context.Context, searcher Searcher, requirement string) (types.BoostInfo, error) {
	op, wanted, err := parseComparator(requirement)
	if err != nil {
		return types.BoostInfo{}, err
	}
	headers, err := searcher.FindHeader("version.hpp", boostIncludeSubpaths)
	if err != nil {
		return types.BoostInfo{}, err
	}
	if len(headers) == 0 {
		return types.BoostInfo{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("boost headers not found")
	}
	versionPath := headers[0]
	matches, err := Egrep(versionPath, boostVersionExpr)
	if err != nil {
		return types.BoostInfo{}, err
	}
	if len(matches) == 0 {
		return types.BoostInfo{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("no BOOST_VERSION macro in %s", versionPath))
	}
	encoded, err := strconv.Atoi(matches[0].Groups[1])
	if err != nil {
		return types.BoostInfo{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("BOOST_VERSION macro is not an integer").
			WithCause(err)
	}
	version := decodeBoostVersion(encoded)

	if op != types.ComparatorOpNone {
		ok, err := satisfiesLoose(version, op, wanted)
		if err != nil {
			return types.BoostInfo{}, err
		}
		if !ok {
			return types.BoostInfo{}, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("boost version %s is not %s %s", version, op, wanted))
		}
	}
	info := types.BoostInfo{
		IncludeDir:  boostIncludeDir(versionPath),
		VersionPath: versionPath,
		Version:     version,
	}
	log.Ctx(ctx).Debug().
		Str("include_dir", info.IncludeDir).
		Str("version", info.Version).
		Msg("boost discovered")
	return info, nil
}

// boostIncludeDir returns the directory to put on the include path so
// that <boost/...> resolves: version.hpp normally sits at
// <include dir>/boost/version.hpp.
func boostIncludeDir(versionPath string) string {
	dir := filepath.Dir(versionPath)
	if filepath.Base(dir) == "boost" {
		return filepath.Dir(dir)
	}
	return dir
}

func decodeBoostVersion(encoded int) string {
	return fmt.Sprintf("%d.%d.%d", encoded/100000, (encoded/100)%1000, encoded%100)
}

// BoostLibraries resolves the requested boost modules to concrete
// libraries. Each module is tried as boost_<module> and then as the
// multithreaded boost_<module>-mt variant, first with the discovered
// version suffix and then without. All chosen libraries must live in
// one directory.
func BoostLibraries(ctx context.Context, searcher Searcher, info types.BoostInfo, modules []string) (string, []string, error) {
	var libDir string
	var libraries []string
	for _, module := range modules {
		path, err := findBoostModule(searcher, module, info.Version)
		if err != nil {
			return "", nil, err
		}
		dir := filepath.Dir(path)
		if libDir == "" {
			libDir = dir
		} else if libDir != dir {
			return "", nil, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("boost libraries split across %s and %s", libDir, dir))
		}
		libraries = append(libraries, LinkName(path))
	}
	log.Ctx(ctx).Debug().
		Str("lib_dir", libDir).
		Strs("libraries", libraries).
		Msg("boost modules resolved")
	return libDir, libraries, nil
}

func findBoostModule(searcher Searcher, module string, version string) (string, error) {
	for _, name := range []string{"boost_" + module, "boost_" + module + "-mt"} {
		for _, candidateVersion := range []string{version, ""} {
			paths, err := searcher.FindLibrary(name, candidateVersion, nil)
			if err != nil {
				return "", err
			}
			if len(paths) > 0 {
				return paths[0], nil
			}
		}
	}
	return "", errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("boost module not found: %s", module))
}
