package core

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
	"github.com/rs/zerolog/log"
)

// ValidateRelease checks the version ordering for a release: latest
// must be strictly greater than the current recorded version, and
// stable, when given, strictly smaller than latest. All versions must
// parse as PEP 440 so pre-release suffixes order correctly
// (20.8.0a1 < 20.8.0).
func ValidateRelease(ctx context.Context, latest string, stable string, current string) error {
	latestVersion, err := parseReleaseVersion("latest", latest)
	if err != nil {
		return err
	}
	currentVersion, err := parseReleaseVersion("current", current)
	if err != nil {
		return err
	}
	if latestVersion.Compare(currentVersion) <= 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("latest version %s must be greater than current version %s", latest, current))
	}
	if stable != "" {
		stableVersion, err := parseReleaseVersion("stable", stable)
		if err != nil {
			return err
		}
		if stableVersion.Compare(latestVersion) >= 0 {
			return errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("stable version %s must be smaller than latest version %s", stable, latest))
		}
	}
	log.Ctx(ctx).Debug().
		Str("latest", latest).
		Str("stable", stable).
		Str("current", current).
		Msg("release versions validated")
	return nil
}

func parseReleaseVersion(role string, value string) (pep440.Version, error) {
	parsed, err := pep440.Parse(value)
	if err != nil {
		return pep440.Version{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("%s version is not a valid version: %s", role, value)).
			WithCause(err)
	}
	return parsed, nil
}
