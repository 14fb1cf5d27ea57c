package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"extbuild/internal/core"
	"extbuild/internal/types"
)

// Locate searches the prefix roots for a file, header, or library.
func (s Service) Locate(ctx context.Context, req LocateRequest) (LocateResult, error) {
	if strings.TrimSpace(req.Name) == "" {
		return LocateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("name is required")
	}
	searcher := core.NewSearcher(core.ResolveRoots(req.SearchRoots))

	var paths []string
	var err error
	switch types.LocateKind(req.Kind) {
	case types.LocateKindFile:
		paths, err = searcher.FindFile(req.Name, req.Subpaths)
	case types.LocateKindHeader:
		paths, err = searcher.FindHeader(req.Name, req.Subpaths)
	case types.LocateKindLibrary:
		paths, err = searcher.FindLibrary(req.Name, req.Version, req.Subpaths)
	default:
		return LocateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported locate kind: %s", req.Kind))
	}
	if err != nil {
		return LocateResult{}, err
	}
	if len(paths) == 0 {
		return LocateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("no %s matches for %s", req.Kind, req.Name))
	}
	return LocateResult{Paths: paths}, nil
}
