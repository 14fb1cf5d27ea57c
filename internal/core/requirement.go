package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"extbuild/internal/types"
)

// opTokens is the ordered list of comparator operators tried during
// parsing. Longer tokens must precede shorter ones to avoid false
// matches (e.g. ">=" before ">").
var opTokens = []types.ComparatorOp{
	types.ComparatorOpGte,
	types.ComparatorOpLte,
	types.ComparatorOpEq,
	types.ComparatorOpGt,
	types.ComparatorOpLt,
}

// ParseRequirement splits a raw "name >= version" string into a
// Requirement. When no comparator is found the requirement is treated
// as a bare package name with ComparatorOpNone.
func ParseRequirement(raw string) (types.Requirement, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return types.Requirement{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("empty requirement")
	}
	for _, op := range opTokens {
		if strings.Contains(raw, string(op)) {
			parts := strings.SplitN(raw, string(op), 2)
			name := strings.TrimSpace(parts[0])
			version := strings.TrimSpace(parts[1])
			if name == "" || version == "" {
				return types.Requirement{}, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("cannot parse requirement: %s", raw))
			}
			if strings.ContainsAny(version, "<>=") {
				return types.Requirement{}, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("cannot parse requirement: %s", raw))
			}
			return types.Requirement{
				Name:    name,
				Op:      op,
				Version: version,
			}, nil
		}
	}
	return types.Requirement{
		Name: raw,
		Op:   types.ComparatorOpNone,
	}, nil
}

// parseComparator parses a bare "<cmp> version" fragment, as used for
// the boost requirement. An empty fragment means no constraint.
func parseComparator(raw string) (types.ComparatorOp, string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return types.ComparatorOpNone, "", nil
	}
	for _, op := range opTokens {
		if strings.HasPrefix(raw, string(op)) {
			version := strings.TrimSpace(strings.TrimPrefix(raw, string(op)))
			if version == "" || strings.ContainsAny(version, "<>=") {
				return types.ComparatorOpNone, "", errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("cannot parse version constraint: %s", raw))
			}
			return op, version, nil
		}
	}
	return types.ComparatorOpNone, "", errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("cannot parse version constraint: %s", raw))
}

// satisfiesLoose applies a comparator to two version strings using
// loose comparison.
func satisfiesLoose(version string, op types.ComparatorOp, wanted string) (bool, error) {
	cmp := CompareLoose(version, wanted)
	switch op {
	case types.ComparatorOpNone:
		return true, nil
	case types.ComparatorOpEq:
		return cmp == 0, nil
	case types.ComparatorOpGte:
		return cmp >= 0, nil
	case types.ComparatorOpLte:
		return cmp <= 0, nil
	case types.ComparatorOpGt:
		return cmp > 0, nil
	case types.ComparatorOpLt:
		return cmp < 0, nil
	default:
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported comparator: %s", op))
	}
}
