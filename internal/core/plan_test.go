package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"extbuild/internal/types"
)

func TestSelfMacros(t *testing.T) {
	macros, err := SelfMacros("imaging.codec", "2.1.0")
	require.NoError(t, err)
	expected := []types.Macro{
		{Name: "EXT_MODULE_PREFIX", Value: `"imaging"`},
		{Name: "EXT_MODULE_NAME", Value: `"codec"`},
		{Name: "EXT_ENTRY_NAME", Value: "PyInit_codec"},
		{Name: "EXT_MODULE_VERSION", Value: `"2.1.0"`},
	}
	if diff := cmp.Diff(expected, macros); diff != "" {
		t.Fatalf("unexpected macros (-want +got):\n%s", diff)
	}
}

func TestSelfMacrosNoVersion(t *testing.T) {
	macros, err := SelfMacros("imaging.io.codec", "")
	require.NoError(t, err)
	require.Len(t, macros, 3)
	assert.Equal(t, `"imaging.io"`, macros[0].Value)
	assert.Equal(t, `"codec"`, macros[1].Value)
}

func TestSelfMacrosInvalidName(t *testing.T) {
	for _, name := range []string{"", "codec", ".codec", "imaging."} {
		_, err := SelfMacros(name, "")
		require.Error(t, err, name)
		assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err), name)
	}
}

func TestComposePlanLinux(t *testing.T) {
	plan, err := ComposePlan(t.Context(), PlanRequest{
		Name:    "imaging.codec",
		Version: "2.1.0",
		OS:      types.TargetOSLinux,
		Packages: []types.PackageInfo{
			{
				Name:        "libpng",
				Version:     "1.6.37",
				IncludeDirs: []string{"/usr/include/libpng16"},
				Macros:      []types.Macro{{Name: "PNG_FOUND", Value: "1"}},
				LibraryDirs: []string{"/usr/lib"},
				Libraries:   []string{"png16"},
			},
			{
				Name:        "zlib",
				Version:     "1.2.11",
				IncludeDirs: []string{"/usr/include/libpng16"},
				LibraryDirs: []string{"/usr/lib"},
				Libraries:   []string{"z"},
			},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "c++", plan.Language)
	assert.Equal(t, []string{"-std=c++11", "-isystem", "/usr/include/libpng16"}, plan.CompileArgs)
	assert.Equal(t, []string{"/usr/include/libpng16"}, plan.IncludeDirs)
	assert.Equal(t, []string{"/usr/lib"}, plan.LibraryDirs)
	assert.Equal(t, []string{"png16", "z"}, plan.Libraries)
	assert.Equal(t, plan.LibraryDirs, plan.RuntimeLibDirs)
	assert.Contains(t, plan.Macros, types.Macro{Name: "PNG_FOUND", Value: "1"})
}

func TestComposePlanDarwin(t *testing.T) {
	plan, err := ComposePlan(t.Context(), PlanRequest{
		Name: "imaging.codec",
		OS:   types.TargetOSDarwin,
	})
	require.NoError(t, err)
	assert.Contains(t, plan.CompileArgs, "-Wno-#warnings")
	assert.Empty(t, plan.RuntimeLibDirs)
}

func TestComposePlanVersionedLinking(t *testing.T) {
	pkg := types.PackageInfo{
		Name:      "acme-math",
		Version:   "3.2.1",
		Libraries: []string{"acme_math"},
	}

	linux, err := ComposePlan(t.Context(), PlanRequest{
		Name:              "acme.math",
		OS:                types.TargetOSLinux,
		Packages:          []types.PackageInfo{pkg},
		VersionedPrefixes: []string{"acme-"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{":libacme_math.so.3.2.1"}, linux.Libraries)

	darwin, err := ComposePlan(t.Context(), PlanRequest{
		Name:              "acme.math",
		OS:                types.TargetOSDarwin,
		Packages:          []types.PackageInfo{pkg},
		VersionedPrefixes: []string{"acme-"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"acme_math.3.2.1"}, darwin.Libraries)

	_, err = ComposePlan(t.Context(), PlanRequest{
		Name:              "acme.math",
		OS:                types.TargetOS("windows"),
		Packages:          []types.PackageInfo{pkg},
		VersionedPrefixes: []string{"acme-"},
	})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestComposePlanBoost(t *testing.T) {
	plan, err := ComposePlan(t.Context(), PlanRequest{
		Name:           "imaging.codec",
		OS:             types.TargetOSLinux,
		Boost:          &types.BoostInfo{IncludeDir: "/opt/boost/include", Version: "1.55.0"},
		BoostLibDir:    "/opt/boost/lib",
		BoostLibraries: []string{"boost_system"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"-std=c++11", "-isystem", "/opt/boost/include"}, plan.CompileArgs)
	assert.Equal(t, []string{"/opt/boost/lib"}, plan.LibraryDirs)
	assert.Equal(t, []string{"boost_system"}, plan.Libraries)
}

func TestComposePlanSkipsUserIncludes(t *testing.T) {
	plan, err := ComposePlan(t.Context(), PlanRequest{
		Name: "imaging.codec",
		OS:   types.TargetOSLinux,
		Packages: []types.PackageInfo{
			{Name: "libpng", Version: "1.6.37", IncludeDirs: []string{"/custom/include"}},
		},
		UserIncludeDirs: []string{"/custom/include"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"-std=c++11"}, plan.CompileArgs)
	assert.Empty(t, plan.IncludeDirs)
}
