package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Scope names one of the three places git keeps a config file, in
// increasing priority order: system-wide, then per-user, then per-repo.
// This is not part of the core loader's contract (the loader only knows
// about the seed paths it is given); it is a convenience so a caller can
// build that seed list the way git itself would.
type Scope int

const (
	SystemScope Scope = iota
	GlobalScope
	LocalScope
)

// Paths returns the conventional config file location(s) for scope. For
// GlobalScope it returns both the legacy ~/.gitconfig and the
// XDG_CONFIG_HOME/git/config path, in the order git itself checks them
// (legacy first, XDG second) so callers can feed both to FromPaths as
// seeds... except XDG's location is also allowed to be absent, which the
// loader already tolerates for includes but not seeds, so callers that want
// XDG to be optional should pass it as an include-style path instead of a
// seed.
func Paths(scope Scope) ([]string, error) {
	switch scope {
	case SystemScope:
		if runtime.GOOS == "windows" {
			return nil, nil
		}
		return []string{"/etc/gitconfig"}, nil
	case GlobalScope:
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		paths := []string{filepath.Join(home, ".gitconfig")}
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			paths = append(paths, filepath.Join(xdg, "git", "config"))
		} else {
			paths = append(paths, filepath.Join(home, ".config", "git", "config"))
		}
		return paths, nil
	case LocalScope:
		return nil, nil
	default:
		return nil, nil
	}
}
