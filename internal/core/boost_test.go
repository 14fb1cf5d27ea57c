package core

import (
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"extbuild/tests/testutil"
)

func TestDiscoverBoost(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, "include/boost/version.hpp", testutil.BoostVersionHeader("105500"))
	searcher := NewSearcher([]string{root})

	info, err := DiscoverBoost(t.Context(), searcher, "")
	require.NoError(t, err)
	assert.Equal(t, "1.55.0", info.Version)
	assert.Equal(t, filepath.Join(root, "include"), info.IncludeDir)
}

func TestDiscoverBoostVersionedLayout(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, "include/boost-1_55/boost/version.hpp", testutil.BoostVersionHeader("105500"))
	searcher := NewSearcher([]string{root})

	info, err := DiscoverBoost(t.Context(), searcher, ">= 1.34")
	require.NoError(t, err)
	assert.Equal(t, "1.55.0", info.Version)
	// The include dir must make <boost/...> includes resolve.
	assert.Equal(t, filepath.Join(root, "include", "boost-1_55"), info.IncludeDir)
}

func TestDiscoverBoostRequirementNotMet(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, "include/boost/version.hpp", testutil.BoostVersionHeader("105500"))
	searcher := NewSearcher([]string{root})

	_, err := DiscoverBoost(t.Context(), searcher, ">= 1.99")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
}

func TestDiscoverBoostMissing(t *testing.T) {
	searcher := NewSearcher([]string{t.TempDir()})
	_, err := DiscoverBoost(t.Context(), searcher, "")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestDecodeBoostVersion(t *testing.T) {
	assert.Equal(t, "1.55.0", decodeBoostVersion(105500))
	assert.Equal(t, "1.34.1", decodeBoostVersion(103401))
	assert.Equal(t, "2.0.0", decodeBoostVersion(200000))
}

func TestBoostLibraries(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, "include/boost/version.hpp", testutil.BoostVersionHeader("105500"))
	testutil.WriteFile(t, root, "lib/libboost_system.so", "")
	testutil.WriteFile(t, root, "lib/libboost_thread-mt.so", "")
	searcher := NewSearcher([]string{root})

	info, err := DiscoverBoost(t.Context(), searcher, "")
	require.NoError(t, err)

	libDir, libraries, err := BoostLibraries(t.Context(), searcher, info, []string{"system", "thread"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "lib"), libDir)
	assert.Equal(t, []string{"boost_system", "boost_thread-mt"}, libraries)
}

func TestBoostLibrariesMissingModule(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, "include/boost/version.hpp", testutil.BoostVersionHeader("105500"))
	searcher := NewSearcher([]string{root})

	info, err := DiscoverBoost(t.Context(), searcher, "")
	require.NoError(t, err)

	_, _, err = BoostLibraries(t.Context(), searcher, info, []string{"filesystem"})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
