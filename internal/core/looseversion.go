package core

import (
	"strconv"
	"strings"
)

// looseComponent is one piece of a loosely parsed version string:
// either a numeric run or a non-numeric run.
type looseComponent struct {
	number  int
	text    string
	numeric bool
}

// parseLoose splits a version string into components. Dots act as
// separators only; runs of digits become numeric components and runs
// of any other characters become text components. There are no
// semantic-versioning rules: "1.5.2b2" parses as [1 5 2 "b" 2].
func parseLoose(value string) []looseComponent {
	var components []looseComponent
	flush := func(run string) {
		if run == "" {
			return
		}
		if number, err := strconv.Atoi(run); err == nil {
			components = append(components, looseComponent{number: number, numeric: true})
			return
		}
		components = append(components, looseComponent{text: run})
	}
	var run strings.Builder
	var runNumeric bool
	for _, r := range strings.TrimSpace(value) {
		if r == '.' {
			flush(run.String())
			run.Reset()
			continue
		}
		isDigit := r >= '0' && r <= '9'
		if run.Len() > 0 && isDigit != runNumeric {
			flush(run.String())
			run.Reset()
		}
		runNumeric = isDigit
		run.WriteRune(r)
	}
	flush(run.String())
	return components
}

// CompareLoose compares two version strings component-wise, returning
// -1, 0, or 1. Numeric components compare numerically, text components
// lexically, and a numeric component orders before a text one. A
// version that is a strict prefix of another compares lower.
func CompareLoose(a string, b string) int {
	left := parseLoose(a)
	right := parseLoose(b)
	for i := 0; i < len(left) && i < len(right); i++ {
		if cmp := compareLooseComponent(left[i], right[i]); cmp != 0 {
			return cmp
		}
	}
	switch {
	case len(left) < len(right):
		return -1
	case len(left) > len(right):
		return 1
	default:
		return 0
	}
}

func compareLooseComponent(a looseComponent, b looseComponent) int {
	if a.numeric && b.numeric {
		switch {
		case a.number < b.number:
			return -1
		case a.number > b.number:
			return 1
		default:
			return 0
		}
	}
	if a.numeric != b.numeric {
		// Numbers order before letters: "1.0" < "1.0a".
		if a.numeric {
			return -1
		}
		return 1
	}
	return strings.Compare(a.text, b.text)
}
