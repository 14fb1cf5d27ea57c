package core

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"extbuild/internal/ports"
	"extbuild/internal/shared"
	"extbuild/internal/types"
)

// CheckRequirements parses each requirement string, queries pkg-config
// for the named package, and enforces the version comparator using
// loose comparison. Duplicate requirement lines are collapsed, but a
// package name appearing in two distinct requirements is an error.
// Returned package information preserves the input order.
func CheckRequirements(ctx context.Context, requirements []string, roots []string, pkgConfig ports.PkgConfigPort) ([]types.PackageInfo, error) {
	used := map[string]struct{}{}
	var checked []types.PackageInfo

	for _, raw := range shared.Uniq(requirements) {
		requirement, err := ParseRequirement(raw)
		if err != nil {
			return nil, err
		}
		if _, ok := used[requirement.Name]; ok {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("package %s requested more than once", requirement.Name))
		}
		used[requirement.Name] = struct{}{}

		info, err := pkgConfig.Query(ctx, requirement.Name, roots)
		if err != nil {
			return nil, err
		}
		if requirement.Op != types.ComparatorOpNone {
			ok, err := satisfiesLoose(info.Version, requirement.Op, requirement.Version)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, errbuilder.New().
					WithCode(errbuilder.CodeFailedPrecondition).
					WithMsg(fmt.Sprintf("%s version %s is not %s %s", info.Name, info.Version, requirement.Op, requirement.Version))
			}
		}
		log.Ctx(ctx).Debug().
			Str("package", info.Name).
			Str("version", info.Version).
			Msg("requirement satisfied")
		checked = append(checked, info)
	}
	return checked, nil
}
