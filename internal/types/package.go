package types

// Macro is a single preprocessor definition passed to the compiler.
// An empty Value means the macro is defined without one.
type Macro struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

// PackageInfo is the queried surface of one pkg-config package: its
// version plus the compile and link information parsed from the
// pkg-config flag output.
type PackageInfo struct {
	Name        string
	Version     string
	IncludeDirs []string
	Macros      []Macro
	LibraryDirs []string
	Libraries   []string
	ExtraCFlags []string
	ExtraLFlags []string
}

// BoostInfo describes a discovered Boost installation.
type BoostInfo struct {
	IncludeDir  string
	VersionPath string
	Version     string
}
