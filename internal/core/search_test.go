package core

import (
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"extbuild/tests/testutil"
)

func TestFindFile(t *testing.T) {
	root := t.TempDir()
	expected := testutil.WriteFile(t, root, "include/blitz/array.h", "// blitz\n")

	searcher := NewSearcher([]string{root})
	found, err := searcher.FindFile("array.h", []string{filepath.Join("include", "blitz")})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, expected, found[0])
	assert.Equal(t, "array.h", filepath.Base(found[0]))
}

func TestFindFileSkipsMissingRoots(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, "include/blitz/array.h", "// blitz\n")

	searcher := NewSearcher([]string{"/nonexistent/prefix", root})
	found, err := searcher.FindFile("array.h", []string{filepath.Join("include", "blitz")})
	require.NoError(t, err)
	require.Len(t, found, 1)
}

func TestFindFileNoSubpaths(t *testing.T) {
	root := t.TempDir()
	expected := testutil.WriteFile(t, root, "notes.txt", "hi\n")

	searcher := NewSearcher([]string{root})
	found, err := searcher.FindFile("notes.txt", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{expected}, found)
}

func TestFindHeaderMatchesFindFile(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, "include/blitz/array.h", "// blitz\n")
	searcher := NewSearcher([]string{root})

	viaFile, err := searcher.FindFile("array.h", []string{filepath.Join("include", "blitz")})
	require.NoError(t, err)
	viaHeader, err := searcher.FindHeader(filepath.Join("blitz", "array.h"), nil)
	require.NoError(t, err)

	require.Len(t, viaHeader, 1)
	assert.Equal(t, viaFile, viaHeader)
}

func TestFindHeaderGlobSubpath(t *testing.T) {
	root := t.TempDir()
	expected := testutil.WriteFile(t, root, "include/boost-1_55/boost/version.hpp", testutil.BoostVersionHeader("105500"))

	searcher := NewSearcher([]string{root})
	found, err := searcher.FindHeader("version.hpp", []string{"boost", "boost?*/boost"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, expected, found[0])
}

func TestFindLibraryUnversioned(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, "lib/libblitz.so", "")
	testutil.WriteFile(t, root, "lib/x86_64-linux-gnu/libblitz.so", "")

	searcher := NewSearcher([]string{root})
	found, err := searcher.FindLibrary("blitz", "", nil)
	require.NoError(t, err)
	require.NotEmpty(t, found)
	for _, path := range found {
		assert.Contains(t, path, "blitz")
	}
}

func TestFindLibraryVersionedOrdering(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, "lib/libblitz.so.1.2.3", "")
	testutil.WriteFile(t, root, "lib/libblitz.so.1.10.0", "")
	plain := testutil.WriteFile(t, root, "lib/libblitz.so", "")

	searcher := NewSearcher([]string{root})
	found, err := searcher.FindLibrary("blitz", "", nil)
	require.NoError(t, err)
	require.Len(t, found, 3)
	assert.Equal(t, plain, found[0])
	// Debian ordering: 1.10.0 is newer than 1.2.3.
	assert.Equal(t, "libblitz.so.1.10.0", filepath.Base(found[1]))
	assert.Equal(t, "libblitz.so.1.2.3", filepath.Base(found[2]))
}

func TestFindLibraryExactVersion(t *testing.T) {
	root := t.TempDir()
	expected := testutil.WriteFile(t, root, "lib/libblitz.so.1.2.3", "")
	testutil.WriteFile(t, root, "lib/libblitz.so.9.9.9", "")

	searcher := NewSearcher([]string{root})
	found, err := searcher.FindLibrary("blitz", "1.2.3", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{expected}, found)
}

func TestEgrep(t *testing.T) {
	root := t.TempDir()
	path := testutil.WriteFile(t, root, "include/boost/version.hpp", testutil.BoostVersionHeader("105500"))

	matches, err := Egrep(path, `^#\s*define\s+BOOST_VERSION\s+(\d+)\s*$`)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "105500", matches[0].Groups[1])
	assert.Equal(t, 3, matches[0].LineNumber)
}

func TestEgrepMissingFile(t *testing.T) {
	_, err := Egrep("/nonexistent/version.hpp", `x`)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestEgrepInvalidExpression(t *testing.T) {
	root := t.TempDir()
	path := testutil.WriteFile(t, root, "file.txt", "x\n")
	_, err := Egrep(path, `([`)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestResolveRootsExplicit(t *testing.T) {
	roots := ResolveRoots([]string{"/opt/dev", "/opt/dev"})
	assert.Equal(t, []string{"/opt/dev"}, roots)
}

func TestResolveRootsEnvironment(t *testing.T) {
	t.Setenv("EXTBUILD_PREFIX_PATH", "/opt/a:/opt/b")
	t.Setenv("CMAKE_PREFIX_PATH", "/opt/b:/opt/c")
	roots := ResolveRoots(nil)
	require.GreaterOrEqual(t, len(roots), 4)
	assert.Equal(t, []string{"/opt/a", "/opt/b", "/opt/c"}, roots[:3])
	assert.Contains(t, roots, "/usr")
}
