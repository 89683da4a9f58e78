// internal/cliutil/cliutil.go
package cliutil

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrNoMatch is returned when a glob names no files.
var ErrNoMatch = errors.New("no input matched")

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandPositionals expands any globs among path-like positionals. "-" (stdin)
// passes through; an empty list becomes ["-"].
func ExpandPositionals(posArgs []string) ([]string, error) {
	if len(posArgs) == 0 {
		return []string{"-"}, nil
	}
	var out []string
	for _, a := range posArgs {
		if a == "-" || !hasGlobMeta(a) {
			out = append(out, a)
			continue
		}
		m, err := filepath.Glob(a)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %w", a, err)
		}
		if len(m) == 0 {
			return nil, fmt.Errorf("%w %q", ErrNoMatch, a)
		}
		out = append(out, m...)
	}
	return out, nil
}
