package ports

import (
	"context"

	"extbuild/internal/types"
)

// PkgConfigPort queries a pkg-config package. The prefix roots extend
// the pkg-config search path for non-system installations.
type PkgConfigPort interface {
	Query(ctx context.Context, name string, prefixRoots []string) (types.PackageInfo, error)
}
