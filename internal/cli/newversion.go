package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"extbuild/internal/app"
)

type newVersionOptions struct {
	LatestVersion string
	StableVersion string
	VersionFile   string
	DryRun        bool
}

func newNewVersionCommand() *cobra.Command {
	opts := newVersionOptions{}
	cmd := &cobra.Command{
		Use:   "new-version",
		Short: "Validate and apply a version bump with tagging",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runNewVersion(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.LatestVersion, "latest-version", "", "Version the development branch moves to")
	cmd.Flags().StringVar(&opts.StableVersion, "stable-version", "", "Version to release and tag (defaults to latest)")
	cmd.Flags().StringVar(&opts.VersionFile, "version-file", "version.txt", "Path of the version file to bump")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Validate only, do not touch the repository")
	_ = viper.BindPFlag("version_file", cmd.Flags().Lookup("version-file"))
	return cmd
}

func runNewVersion(ctx context.Context, cmd *cobra.Command, opts newVersionOptions) error {
	service := newAppService()
	result, err := service.Release(ctx, app.ReleaseRequest{
		LatestVersion: opts.LatestVersion,
		StableVersion: opts.StableVersion,
		VersionFile:   resolveString(cmd, opts.VersionFile, "version_file", "version-file"),
		DryRun:        resolveBool(cmd, opts.DryRun, "dry_run", "dry-run"),
	})
	if err != nil {
		return err
	}
	if !result.Applied {
		fmt.Printf("validated (dry run): %s\n", result.Tag)
		return nil
	}
	fmt.Printf("tagged: %s\n", result.Tag)
	return nil
}
