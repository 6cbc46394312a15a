package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git-core/gitconfig/internal/pathutil"
)

// PathResolver expands `~` and resolves include paths relative to the file
// that declared them. It never checks for existence; that is the
// IncludeResolver's job.
type PathResolver struct{}

// NewPathResolver returns a ready-to-use PathResolver; it carries no state.
func NewPathResolver() PathResolver { return PathResolver{} }

// Resolve expands raw (an include's path= value) against includingFile's
// directory. The bool result is false only when raw requires tilde
// expansion and no home directory is known.
func (PathResolver) Resolve(raw, includingFile string) (string, bool) {
	switch {
	case raw == "~":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false
		}
		return home, true
	case strings.HasPrefix(raw, "~"):
		expanded, err := pathutil.ReplaceTildeWithHome(raw)
		if err != nil {
			return "", false
		}
		return expanded, true
	case filepath.IsAbs(raw):
		return raw, true
	default:
		return filepath.Join(filepath.Dir(includingFile), raw), true
	}
}

// normalizeSlashes rewrites backslashes to forward slashes, used when
// preparing a resolved filesystem path (not a user-written glob pattern,
// whose backslashes stay literal) for matching.
func normalizeSlashes(p string) string {
	return strings.ReplaceAll(p, `\`, `/`)
}
