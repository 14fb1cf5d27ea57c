// Package shared provides common utility functions used across multiple
// packages in the extbuild codebase.
package shared

import (
	"fmt"
	"strings"
)

// Uniq removes duplicate strings while preserving first-seen order.
func Uniq(values []string) []string {
	seen := map[string]struct{}{}
	var result []string
	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		result = append(result, value)
	}
	return result
}

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	return fmt.Errorf("%s: %w", strings.TrimSpace(string(output)), err)
}
