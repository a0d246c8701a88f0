// Package stacktrace trims goroutine dumps down to this module's frames.
package stacktrace

import (
	"bufio"
	"bytes"
	"strings"
)

// InternalPaths returns the "internal/<pkg>/<file>.go:<line>" locations found
// in a debug.Stack dump, innermost first.
func InternalPaths(stack []byte) []string {
	var paths []string

	sc := bufio.NewScanner(bytes.NewReader(stack))
	for sc.Scan() {
		line := sc.Text()
		// location lines are tab-indented: "\t/abs/path/file.go:12 +0x1d"
		if !strings.HasPrefix(line, "\t") {
			continue
		}

		loc, _, _ := strings.Cut(strings.TrimSpace(line), " ")
		i := strings.Index(loc, "/internal/")
		if i < 0 || !strings.Contains(loc[i:], ".go:") {
			continue
		}
		paths = append(paths, loc[i+1:])
	}

	return paths
}
