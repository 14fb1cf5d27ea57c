package adapters

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"extbuild/internal/ports"
	"extbuild/internal/shared"
	"extbuild/internal/types"
)

// PkgConfigExecAdapter queries packages by running the real pkg-config
// binary and parsing its flag output.
type PkgConfigExecAdapter struct {
	Binary string
}

func NewPkgConfigExecAdapter() PkgConfigExecAdapter {
	return PkgConfigExecAdapter{Binary: "pkg-config"}
}

func (a PkgConfigExecAdapter) Query(ctx context.Context, name string, prefixRoots []string) (types.PackageInfo, error) {
	if strings.TrimSpace(name) == "" {
		return types.PackageInfo{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package name is empty")
	}
	version, err := a.run(ctx, prefixRoots, "--modversion", name)
	if err != nil {
		return types.PackageInfo{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("pkg-config package not found: %s", name)).
			WithCause(err)
	}
	cflags, err := a.run(ctx, prefixRoots, "--cflags", name)
	if err != nil {
		return types.PackageInfo{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("pkg-config --cflags failed for %s", name)).
			WithCause(err)
	}
	libs, err := a.run(ctx, prefixRoots, "--libs", name)
	if err != nil {
		return types.PackageInfo{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("pkg-config --libs failed for %s", name)).
			WithCause(err)
	}
	info := types.PackageInfo{
		Name:    name,
		Version: strings.TrimSpace(version),
	}
	parseCFlags(&info, strings.Fields(cflags))
	parseLibFlags(&info, strings.Fields(libs))
	return info, nil
}

func (a PkgConfigExecAdapter) run(ctx context.Context, prefixRoots []string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, a.Binary, args...)
	cmd.Env = append(os.Environ(), "PKG_CONFIG_PATH="+pkgConfigPath(prefixRoots))
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", shared.CommandError(output, err)
	}
	return string(output), nil
}

// pkgConfigPath extends any existing PKG_CONFIG_PATH with the
// conventional pkgconfig directories under each prefix root.
func pkgConfigPath(prefixRoots []string) string {
	var entries []string
	if existing := os.Getenv("PKG_CONFIG_PATH"); existing != "" {
		entries = append(entries, existing)
	}
	for _, root := range prefixRoots {
		entries = append(entries,
			filepath.Join(root, "lib", "pkgconfig"),
			filepath.Join(root, "lib64", "pkgconfig"),
		)
	}
	return strings.Join(shared.Uniq(entries), ":")
}

// parseCFlags sorts compile-flag tokens into include directories and
// macro definitions, keeping anything else as an extra flag.
func parseCFlags(info *types.PackageInfo, tokens []string) {
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		switch {
		case token == "-I" || token == "-isystem":
			if i+1 < len(tokens) {
				i++
				info.IncludeDirs = append(info.IncludeDirs, tokens[i])
			}
		case strings.HasPrefix(token, "-I"):
			info.IncludeDirs = append(info.IncludeDirs, strings.TrimPrefix(token, "-I"))
		case strings.HasPrefix(token, "-D"):
			info.Macros = append(info.Macros, parseMacro(strings.TrimPrefix(token, "-D")))
		default:
			info.ExtraCFlags = append(info.ExtraCFlags, token)
		}
	}
	info.IncludeDirs = shared.Uniq(info.IncludeDirs)
}

// parseLibFlags sorts link-flag tokens into library directories and
// library names, keeping anything else as an extra flag.
func parseLibFlags(info *types.PackageInfo, tokens []string) {
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		switch {
		case token == "-L":
			if i+1 < len(tokens) {
				i++
				info.LibraryDirs = append(info.LibraryDirs, tokens[i])
			}
		case strings.HasPrefix(token, "-L"):
			info.LibraryDirs = append(info.LibraryDirs, strings.TrimPrefix(token, "-L"))
		case token == "-l":
			if i+1 < len(tokens) {
				i++
				info.Libraries = append(info.Libraries, tokens[i])
			}
		case strings.HasPrefix(token, "-l"):
			info.Libraries = append(info.Libraries, strings.TrimPrefix(token, "-l"))
		default:
			info.ExtraLFlags = append(info.ExtraLFlags, token)
		}
	}
	info.LibraryDirs = shared.Uniq(info.LibraryDirs)
	info.Libraries = shared.Uniq(info.Libraries)
}

func parseMacro(definition string) types.Macro {
	parts := strings.SplitN(definition, "=", 2)
	if len(parts) == 2 {
		return types.Macro{Name: parts[0], Value: parts[1]}
	}
	return types.Macro{Name: definition}
}

var _ ports.PkgConfigPort = PkgConfigExecAdapter{}
