package core

import (
	"path/filepath"
	"sort"
	"strings"

	debversion "github.com/knqyf263/go-deb-version"
)

// libraryFilePatterns lists the candidate file names for a library,
// shared objects first. With an explicit version only that version is
// accepted; without one, versioned siblings are globbed.
func libraryFilePatterns(name string, version string) []string {
	base := "lib" + name
	if version != "" {
		return []string{
			base + ".so",
			base + ".so." + version,
			base + ".dylib",
			base + "." + version + ".dylib",
			base + ".a",
		}
	}
	return []string{
		base + ".so",
		base + ".so.*",
		base + ".dylib",
		base + ".a",
	}
}

// libraryVersionSuffix extracts the version trailing a ".so." in a
// library file name, or "" for unversioned artifacts.
func libraryVersionSuffix(path string) string {
	name := filepath.Base(path)
	marker := ".so."
	idx := strings.Index(name, marker)
	if idx < 0 {
		return ""
	}
	return name[idx+len(marker):]
}

// sortLibraryCandidates orders unversioned artifacts first, preserving
// their discovery order, and versioned ones after, newest first.
// Version suffixes are ordered with Debian version semantics, falling
// back to lexical order when a suffix does not parse.
func sortLibraryCandidates(paths []string) []string {
	var plain []string
	var versioned []string
	for _, path := range paths {
		if libraryVersionSuffix(path) == "" {
			plain = append(plain, path)
			continue
		}
		versioned = append(versioned, path)
	}
	sort.SliceStable(versioned, func(i, j int) bool {
		return compareLibraryVersions(libraryVersionSuffix(versioned[i]), libraryVersionSuffix(versioned[j])) > 0
	})
	return append(plain, versioned...)
}

func compareLibraryVersions(a string, b string) int {
	left, errLeft := debversion.NewVersion(a)
	right, errRight := debversion.NewVersion(b)
	if errLeft != nil || errRight != nil {
		return strings.Compare(a, b)
	}
	return left.Compare(right)
}

// LinkName derives the name passed to the linker from a library file
// path: the "lib" prefix and everything from the first extension on
// are stripped.
func LinkName(path string) string {
	name := filepath.Base(path)
	name = strings.TrimPrefix(name, "lib")
	for _, ext := range []string{".so", ".dylib", ".a"} {
		if idx := strings.Index(name, ext); idx >= 0 {
			name = name[:idx]
			break
		}
	}
	return name
}
