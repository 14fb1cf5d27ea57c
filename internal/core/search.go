package core

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/bmatcuk/doublestar/v4"

	"extbuild/internal/shared"
	"extbuild/internal/types"
)

// defaultRoots are the standard installation prefixes searched after
// any environment-provided ones.
var defaultRoots = []string{"/usr", "/usr/local", "/opt/local", "/opt/homebrew"}

// prefixPathEnvVars are colon-separated lists of extra prefixes, in
// precedence order.
var prefixPathEnvVars = []string{"EXTBUILD_PREFIX_PATH", "CMAKE_PREFIX_PATH"}

// Searcher locates files under an ordered list of prefix roots.
type Searcher struct {
	Roots []string
}

func NewSearcher(roots []string) Searcher {
	return Searcher{Roots: roots}
}

// ResolveRoots returns the explicit roots when given, otherwise the
// environment prefixes followed by the standard system prefixes.
func ResolveRoots(explicit []string) []string {
	if len(explicit) > 0 {
		return shared.Uniq(explicit)
	}
	var roots []string
	for _, envVar := range prefixPathEnvVars {
		for _, entry := range strings.Split(os.Getenv(envVar), ":") {
			entry = strings.TrimSpace(entry)
			if entry != "" {
				roots = append(roots, entry)
			}
		}
	}
	roots = append(roots, defaultRoots...)
	return shared.Uniq(roots)
}

// FindFile searches every root for a file called name inside each
// subpath. Subpaths may contain glob wildcards which are expanded
// against the root; an empty subpath list makes the roots themselves
// the candidate directories. Nonexistent roots and pattern expansions
// that are not directories are skipped. Results are absolute paths,
// deduplicated preserving root order.
func (s Searcher) FindFile(name string, subpaths []string) ([]string, error) {
	var found []string
	for _, root := range s.Roots {
		dirs, err := expandSubpaths(root, subpaths)
		if err != nil {
			return nil, err
		}
		for _, dir := range dirs {
			candidate := filepath.Join(dir, name)
			info, err := os.Stat(candidate)
			if err != nil || info.IsDir() {
				continue
			}
			absolute, err := filepath.Abs(candidate)
			if err != nil {
				continue
			}
			found = append(found, absolute)
		}
	}
	return shared.Uniq(found), nil
}

// FindHeader is FindFile with every subpath anchored under the
// conventional include directory.
func (s Searcher) FindHeader(name string, subpaths []string) ([]string, error) {
	anchored := []string{"include"}
	for _, subpath := range subpaths {
		anchored = append(anchored, filepath.Join("include", subpath))
	}
	return s.FindFile(name, anchored)
}

// FindLibrary searches the lib-style subdirectories of every root for
// a library called name. When version is set the versioned shared
// object names are tried as well; when it is empty any versioned
// sibling is discovered through globbing. Unversioned exact matches
// come first, followed by versioned matches newest first.
func (s Searcher) FindLibrary(name string, version string, subpaths []string) ([]string, error) {
	libSubpaths := append([]string{"lib", "lib/*-linux-gnu*", "lib64"}, subpaths...)
	var found []string
	for _, pattern := range libraryFilePatterns(name, version) {
		matches, err := s.findGlob(pattern, libSubpaths)
		if err != nil {
			return nil, err
		}
		found = append(found, matches...)
	}
	return sortLibraryCandidates(shared.Uniq(found)), nil
}

// findGlob is FindFile with a glob pattern instead of a literal
// filename.
func (s Searcher) findGlob(pattern string, subpaths []string) ([]string, error) {
	var found []string
	for _, root := range s.Roots {
		dirs, err := expandSubpaths(root, subpaths)
		if err != nil {
			return nil, err
		}
		for _, dir := range dirs {
			matches, err := doublestar.FilepathGlob(filepath.Join(dir, pattern))
			if err != nil {
				return nil, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("invalid glob pattern: %s", pattern)).
					WithCause(err)
			}
			for _, match := range matches {
				info, err := os.Stat(match)
				if err != nil || info.IsDir() {
					continue
				}
				absolute, err := filepath.Abs(match)
				if err != nil {
					continue
				}
				found = append(found, absolute)
			}
		}
	}
	return shared.Uniq(found), nil
}

// expandSubpaths turns root+subpath patterns into existing candidate
// directories.
func expandSubpaths(root string, subpaths []string) ([]string, error) {
	if len(subpaths) == 0 {
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			return nil, nil
		}
		return []string{root}, nil
	}
	var dirs []string
	for _, subpath := range subpaths {
		pattern := filepath.Join(root, subpath)
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid glob pattern: %s", subpath)).
				WithCause(err)
		}
		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil || !info.IsDir() {
				continue
			}
			dirs = append(dirs, match)
		}
	}
	return dirs, nil
}

// Egrep applies expr to every line of the file at path and returns all
// matches with their line numbers and capture groups.
func Egrep(path string, expr string) ([]types.GrepMatch, error) {
	matcher, err := regexp.Compile(expr)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid expression: %s", expr)).
			WithCause(err)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("cannot read file: %s", path)).
			WithCause(err)
	}
	defer file.Close()

	var matches []types.GrepMatch
	scanner := bufio.NewScanner(file)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		groups := matcher.FindStringSubmatch(line)
		if groups == nil {
			continue
		}
		matches = append(matches, types.GrepMatch{
			LineNumber: lineNumber,
			Line:       line,
			Groups:     groups,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to scan file: %s", path)).
			WithCause(err)
	}
	return matches, nil
}
