package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"extbuild/internal/app"
)

type checkOptions struct {
	Packages []string
	Prefixes []string
}

func newCheckCommand() *cobra.Command {
	opts := checkOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate pkg-config package requirements",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringSliceVar(&opts.Packages, "package", nil, "Package requirement, e.g. 'libpng >= 1.6'")
	cmd.Flags().StringSliceVar(&opts.Prefixes, "prefix", nil, "Installation prefix search root")
	_ = viper.BindPFlag("prefix_paths", cmd.Flags().Lookup("prefix"))
	return cmd
}

func runCheck(ctx context.Context, cmd *cobra.Command, opts checkOptions) error {
	service := newAppService()
	result, err := service.Check(ctx, app.CheckRequest{
		Packages:    opts.Packages,
		SearchRoots: resolveStrings(cmd, opts.Prefixes, "prefix_paths", "prefix"),
	})
	if err != nil {
		return err
	}
	for _, pkg := range result.Packages {
		fmt.Printf("%s %s\n", pkg.Name, pkg.Version)
	}
	return nil
}
