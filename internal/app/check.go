package app

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"extbuild/internal/core"
)

// Check validates requirement strings against the installed
// pkg-config packages.
func (s Service) Check(ctx context.Context, req CheckRequest) (CheckResult, error) {
	if len(req.Packages) == 0 {
		return CheckResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one package requirement is required")
	}
	roots := core.ResolveRoots(req.SearchRoots)
	checked, err := core.CheckRequirements(ctx, req.Packages, roots, s.PkgConfig)
	if err != nil {
		return CheckResult{}, err
	}
	return CheckResult{Packages: checked}, nil
}
