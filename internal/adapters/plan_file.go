package adapters

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"extbuild/internal/ports"
	"extbuild/internal/types"
)

// PlanFileAdapter serializes build plans to json or yaml files.
type PlanFileAdapter struct{}

func NewPlanFileAdapter() PlanFileAdapter {
	return PlanFileAdapter{}
}

func (a PlanFileAdapter) Write(plan types.BuildPlan, path string, format types.PlanFormat) error {
	data, err := MarshalPlan(plan, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write build plan: " + path).
			WithCause(err)
	}
	return nil
}

// MarshalPlan renders a build plan in the requested format.
func MarshalPlan(plan types.BuildPlan, format types.PlanFormat) ([]byte, error) {
	switch format {
	case types.PlanFormatJSON, "":
		data, err := json.MarshalIndent(plan, "", "  ")
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to marshal build plan").
				WithCause(err)
		}
		return append(data, '\n'), nil
	case types.PlanFormatYAML:
		data, err := yaml.Marshal(plan)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to marshal build plan").
				WithCause(err)
		}
		return data, nil
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported plan format: %s", format))
	}
}

var _ ports.PlanWriterPort = PlanFileAdapter{}
