package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"extbuild/internal/adapters"
	"extbuild/internal/app"
	"extbuild/internal/types"
)

type configureOptions struct {
	Name              string
	ModuleVersion     string
	Packages          []string
	BoostModules      []string
	Prefixes          []string
	TargetOS          string
	VersionedPrefixes []string
	IncludeDirs       []string
	Output            string
	Format            string
}

func newConfigureCommand() *cobra.Command {
	opts := configureOptions{}
	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Assemble compiler and linker flags for an extension",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigure(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Name, "name", "", "Dotted extension name (pkg.mod)")
	cmd.Flags().StringVar(&opts.ModuleVersion, "module-version", "", "Extension module version")
	cmd.Flags().StringSliceVar(&opts.Packages, "package", nil, "Package requirement, e.g. 'libpng >= 1.6'")
	cmd.Flags().StringSliceVar(&opts.BoostModules, "boost-module", nil, "Boost module to link, e.g. system")
	cmd.Flags().StringSliceVar(&opts.Prefixes, "prefix", nil, "Installation prefix search root")
	cmd.Flags().StringVar(&opts.TargetOS, "target-os", "", "Target OS (defaults to the host)")
	cmd.Flags().StringSliceVar(&opts.VersionedPrefixes, "versioned-prefix", nil, "Package name prefix linked against versioned artifacts")
	cmd.Flags().StringSliceVar(&opts.IncludeDirs, "include-dir", nil, "Extra user include directory")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Build plan output path (stdout when empty)")
	cmd.Flags().StringVar(&opts.Format, "format", "json", "Build plan format (json or yaml)")
	_ = viper.BindPFlag("prefix_paths", cmd.Flags().Lookup("prefix"))
	_ = viper.BindPFlag("versioned_prefixes", cmd.Flags().Lookup("versioned-prefix"))
	return cmd
}

func runConfigure(ctx context.Context, cmd *cobra.Command, opts configureOptions) error {
	service := newAppService()
	result, err := service.Configure(ctx, app.ConfigureRequest{
		Name:              opts.Name,
		Version:           opts.ModuleVersion,
		Packages:          opts.Packages,
		BoostModules:      opts.BoostModules,
		SearchRoots:       resolveStrings(cmd, opts.Prefixes, "prefix_paths", "prefix"),
		TargetOS:          opts.TargetOS,
		VersionedPrefixes: resolveStrings(cmd, opts.VersionedPrefixes, "versioned_prefixes", "versioned-prefix"),
		IncludeDirs:       opts.IncludeDirs,
		OutputPath:        opts.Output,
		Format:            opts.Format,
	})
	if err != nil {
		return err
	}
	if result.OutputPath != "" {
		fmt.Printf("build plan written: %s\n", result.OutputPath)
		return nil
	}
	data, err := adapters.MarshalPlan(result.Plan, types.PlanFormat(opts.Format))
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	if cmd == nil {
		if len(values) > 0 {
			return values
		}
		return viper.GetStringSlice(key)
	}
	if flagChanged(cmd, flagName) {
		return values
	}
	return viper.GetStringSlice(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
