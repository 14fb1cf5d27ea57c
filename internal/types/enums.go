package types

// ComparatorOp is a version comparator token as it appears in a
// requirement string.
type ComparatorOp string

const (
	ComparatorOpNone ComparatorOp = ""
	ComparatorOpEq   ComparatorOp = "=="
	ComparatorOpGte  ComparatorOp = ">="
	ComparatorOpLte  ComparatorOp = "<="
	ComparatorOpGt   ComparatorOp = ">"
	ComparatorOpLt   ComparatorOp = "<"
)

// LocateKind selects what a filesystem lookup searches for.
type LocateKind string

const (
	LocateKindFile    LocateKind = "file"
	LocateKindHeader  LocateKind = "header"
	LocateKindLibrary LocateKind = "library"
)

// TargetOS is the operating system a build plan links for. Only Linux
// and Darwin know how to link versioned shared libraries.
type TargetOS string

const (
	TargetOSLinux  TargetOS = "linux"
	TargetOSDarwin TargetOS = "darwin"
)

// PlanFormat selects the serialization format for an emitted build plan.
type PlanFormat string

const (
	PlanFormatJSON PlanFormat = "json"
	PlanFormatYAML PlanFormat = "yaml"
)
