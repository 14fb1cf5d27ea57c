package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"extbuild/internal/core"
)

// Release validates the requested version bump against the version
// file and, unless dry-run, applies it: write the release version,
// commit, tag, push, then restore the latest development version.
func (s Service) Release(ctx context.Context, req ReleaseRequest) (ReleaseResult, error) {
	latest := strings.TrimSpace(req.LatestVersion)
	if latest == "" {
		return ReleaseResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("latest version is required")
	}
	stable := strings.TrimSpace(req.StableVersion)
	versionFile := req.VersionFile
	if strings.TrimSpace(versionFile) == "" {
		return ReleaseResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("version file path is required")
	}
	current, err := s.VersionFile.Read(versionFile)
	if err != nil {
		return ReleaseResult{}, err
	}
	if err := core.ValidateRelease(ctx, latest, stable, current); err != nil {
		return ReleaseResult{}, err
	}

	release := stable
	if release == "" {
		release = latest
	}
	tag := "v" + release

	if req.DryRun {
		log.Ctx(ctx).Info().
			Str("release", release).
			Str("tag", tag).
			Str("restore", latest).
			Msg("dry run, skipping version bump and tag")
		return ReleaseResult{Tag: tag, Applied: false}, nil
	}

	if err := s.VersionFile.Write(versionFile, release); err != nil {
		return ReleaseResult{}, err
	}
	if err := s.VCS.Commit(ctx, fmt.Sprintf("Increased stable version to %s", release)); err != nil {
		return ReleaseResult{}, err
	}
	if err := s.VCS.Tag(ctx, tag, fmt.Sprintf("Release %s", release)); err != nil {
		return ReleaseResult{}, err
	}
	if err := s.VersionFile.Write(versionFile, latest); err != nil {
		return ReleaseResult{}, err
	}
	if err := s.VCS.Commit(ctx, fmt.Sprintf("Increased latest version to %s", latest)); err != nil {
		return ReleaseResult{}, err
	}
	if err := s.VCS.Push(ctx); err != nil {
		return ReleaseResult{}, err
	}
	return ReleaseResult{Tag: tag, Applied: true}, nil
}
