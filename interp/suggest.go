// Copyright (c) 2017, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package interp

import (
	"os"
	"path/filepath"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"barleysh/expand"
)

// suggestCommand returns a "did you mean" correction for a command name that
// was not found in PATH, checked against builtin names and the
// non-directory entries of every PATH directory. It returns "" when nothing is close enough to
// be worth suggesting.
//
// This is only ever invoked on the command-not-found path; it never affects
// normal dispatch.
func suggestCommand(env expand.Environ, dir, name string) string {
	candidates := append([]string(nil), builtinNames...)
	for _, elem := range filepath.SplitList(env.Get("PATH").String()) {
		if elem == "" {
			elem = "."
		}
		entries, err := os.ReadDir(absPath(dir, elem))
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			candidates = append(candidates, e.Name())
		}
	}
	ranks := fuzzy.RankFindFold(name, candidates)
	if len(ranks) == 0 {
		return ""
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	return best.Target
}
