package adapters

import (
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"extbuild/internal/ports"
)

// VersionFileAdapter reads and writes the single-line version file a
// release workflow bumps.
type VersionFileAdapter struct{}

func NewVersionFileAdapter() VersionFileAdapter {
	return VersionFileAdapter{}
}

func (a VersionFileAdapter) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("version file not found: " + path).
			WithCause(err)
	}
	version := strings.TrimSpace(string(data))
	if version == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("version file is empty: " + path)
	}
	return version, nil
}

func (a VersionFileAdapter) Write(path string, version string) error {
	if err := os.WriteFile(path, []byte(version+"\n"), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write version file: " + path).
			WithCause(err)
	}
	return nil
}

var _ ports.VersionFilePort = VersionFileAdapter{}
