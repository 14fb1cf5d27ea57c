package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"extbuild/internal/app"
)

type locateOptions struct {
	Kind     string
	Name     string
	Subpaths []string
	Version  string
	Prefixes []string
}

func newLocateCommand() *cobra.Command {
	opts := locateOptions{}
	cmd := &cobra.Command{
		Use:   "locate",
		Short: "Search the prefix roots for a file, header, or library",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLocate(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Kind, "kind", "header", "What to search for: file, header, or library")
	cmd.Flags().StringVar(&opts.Name, "name", "", "File or library name")
	cmd.Flags().StringSliceVar(&opts.Subpaths, "subpath", nil, "Candidate subdirectory pattern (glob wildcards allowed)")
	cmd.Flags().StringVar(&opts.Version, "lib-version", "", "Shared library version suffix")
	cmd.Flags().StringSliceVar(&opts.Prefixes, "prefix", nil, "Installation prefix search root")
	_ = viper.BindPFlag("prefix_paths", cmd.Flags().Lookup("prefix"))
	return cmd
}

func runLocate(ctx context.Context, cmd *cobra.Command, opts locateOptions) error {
	service := newAppService()
	result, err := service.Locate(ctx, app.LocateRequest{
		Kind:        opts.Kind,
		Name:        opts.Name,
		Subpaths:    opts.Subpaths,
		Version:     opts.Version,
		SearchRoots: resolveStrings(cmd, opts.Prefixes, "prefix_paths", "prefix"),
	})
	if err != nil {
		return err
	}
	for _, path := range result.Paths {
		fmt.Println(path)
	}
	return nil
}
