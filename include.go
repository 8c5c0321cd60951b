// Copyright (c) 2025, The gogpu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glprog

import (
	"io/fs"
	"log/slog"
	"path"
	"slices"
	"strings"
)

// IncludeFS expands #include "file" lines in GLSL source, reading
// included files from fsys. A file is resolved against the root of
// fsys first and against dir second. Each include line is kept as a
// comment above the text it pulled in, and includes are expanded one
// level deep. Unresolvable includes are logged and left in place.
func IncludeFS(fsys fs.FS, dir, code string) string {
	lines := splitLines(code)
	for li := len(lines) - 1; li >= 0; li-- {
		ln := lines[li]
		if !strings.HasPrefix(ln, `#include "`) {
			continue
		}
		fname, _, ok := strings.Cut(ln[len(`#include "`):], `"`)
		if !ok {
			slog.Error("glprog.IncludeFS: malformed #include, no closing quote", "line", ln)
			continue
		}
		b, err := fs.ReadFile(fsys, fname)
		if err != nil {
			b, err = fs.ReadFile(fsys, path.Join(dir, fname))
			if err != nil {
				slog.Error("glprog.IncludeFS: include not found", "file", fname, "dir", dir)
				continue
			}
		}
		lines[li] = "// " + ln
		lines = slices.Insert(lines, li+1, splitLines(string(b))...)
	}
	return strings.Join(lines, "\n")
}

// splitLines splits on newlines, tolerating \r\n endings.
func splitLines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}
