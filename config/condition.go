package config

import (
	"os"
	"strings"

	"github.com/go-git-core/gitconfig/plumbing/refname"
)

// ConditionEvaluator evaluates the condition carried by an
// `[includeIf "<condition>"]` header against the load's Options and the
// directory of the file that declared the condition.
type ConditionEvaluator struct {
	glob GlobMatcher
}

// NewConditionEvaluator returns a ready-to-use ConditionEvaluator.
func NewConditionEvaluator() ConditionEvaluator {
	return ConditionEvaluator{glob: NewGlobMatcher()}
}

// Evaluate reports whether condition (the quoted subsection text of an
// includeIf header, e.g. "gitdir:~/work/**") matches. Any unrecognized
// prefix evaluates to false.
func (c ConditionEvaluator) Evaluate(condition string, opts Options, includingDir string) bool {
	switch {
	case strings.HasPrefix(condition, "gitdir/i:"):
		return c.matchGitdir(strings.TrimPrefix(condition, "gitdir/i:"), opts.GitDir, includingDir, true)
	case strings.HasPrefix(condition, "gitdir:"):
		return c.matchGitdir(strings.TrimPrefix(condition, "gitdir:"), opts.GitDir, includingDir, false)
	case strings.HasPrefix(condition, "onbranch:"):
		return c.matchOnBranch(strings.TrimPrefix(condition, "onbranch:"), opts.BranchName)
	default:
		return false
	}
}

func (c ConditionEvaluator) matchGitdir(pattern, gitDir, includingDir string, fold bool) bool {
	if gitDir == "" {
		return false
	}
	pattern = transformGitdirPattern(pattern, includingDir)
	target := normalizeSlashes(gitDir)
	return c.glob.Match(pattern, target, fold)
}

func (c ConditionEvaluator) matchOnBranch(pattern, branchName string) bool {
	if branchName == "" {
		return false
	}
	if err := refname.ValidatePartial([]byte(branchName)); err != nil {
		return false
	}
	branch := strings.TrimPrefix(branchName, "refs/heads/")
	if strings.HasSuffix(pattern, "/") {
		pattern += "**"
	}
	if strings.HasPrefix(pattern, "/") {
		pattern = "**" + pattern
	} else {
		pattern = "**/" + pattern
	}
	return c.glob.Match(pattern, normalizeSlashes(branch), false)
}

// transformGitdirPattern applies the implicit prefix/suffix rules git
// documents for gitdir: patterns: "./" resolves against the including
// file's directory, "~/" expands to $HOME, and an otherwise-unanchored
// pattern is prefixed with "**/" (a trailing "/" gets "**" appended).
// The pattern's own backslashes are never touched: they are literal.
func transformGitdirPattern(pattern, includingDir string) string {
	switch {
	case strings.HasPrefix(pattern, "./"):
		pattern = normalizeSlashes(includingDir) + "/" + pattern[len("./"):]
	case strings.HasPrefix(pattern, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			pattern = normalizeSlashes(home) + "/" + pattern[len("~/"):]
		}
	}

	anchored := strings.HasPrefix(pattern, "/") || isDriveLetterPrefix(pattern)
	if strings.HasSuffix(pattern, "/") {
		pattern += "**"
	}
	if !anchored {
		pattern = "**/" + pattern
	}
	return pattern
}

func isDriveLetterPrefix(s string) bool {
	return len(s) >= 2 &&
		((s[0] >= 'A' && s[0] <= 'Z') || (s[0] >= 'a' && s[0] <= 'z')) &&
		s[1] == ':'
}
