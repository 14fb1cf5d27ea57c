package types

// Requirement is a parsed dependency requirement: a pkg-config package
// name with an optional comparator and version literal.
type Requirement struct {
	Name    string
	Op      ComparatorOp
	Version string
}

// GrepMatch is a single regex hit produced while scanning a text file
// line by line. Groups holds the full match followed by submatches.
type GrepMatch struct {
	LineNumber int
	Line       string
	Groups     []string
}
