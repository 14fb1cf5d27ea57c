package ports

import "extbuild/internal/types"

// PlanWriterPort serializes a build plan to a file.
type PlanWriterPort interface {
	Write(plan types.BuildPlan, path string, format types.PlanFormat) error
}
