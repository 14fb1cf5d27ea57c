package types

// BuildPlan is the assembled compiler/linker configuration for one
// native extension module, ready to be handed to a packaging step.
type BuildPlan struct {
	Name           string   `json:"name" yaml:"name"`
	Language       string   `json:"language" yaml:"language"`
	Macros         []Macro  `json:"macros" yaml:"macros"`
	CompileArgs    []string `json:"compile_args" yaml:"compile_args"`
	IncludeDirs    []string `json:"include_dirs" yaml:"include_dirs"`
	LibraryDirs    []string `json:"library_dirs" yaml:"library_dirs"`
	Libraries      []string `json:"libraries" yaml:"libraries"`
	RuntimeLibDirs []string `json:"runtime_library_dirs,omitempty" yaml:"runtime_library_dirs,omitempty"`
}
