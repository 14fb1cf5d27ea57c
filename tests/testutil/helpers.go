// Package testutil provides shared test helpers for building fake
// installation prefix trees on disk.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteFile creates relative (with parents) under root and returns the
// full path.
func WriteFile(t *testing.T, root string, relative string, content string) string {
	t.Helper()
	path := filepath.Join(root, relative)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// BoostVersionHeader renders a minimal boost version.hpp carrying the
// given encoded BOOST_VERSION value.
func BoostVersionHeader(encoded string) string {
	return "// boost version header\n#define BOOST_LIB_VERSION \"x\"\n#define BOOST_VERSION " + encoded + "\n"
}
