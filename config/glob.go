package config

// GlobMatcher implements the restricted fnmatch dialect git uses for
// gitdir:/gitdir/i:/onbranch: include conditions: literal segments, `?`,
// `*` (never crosses `/`), and `**` (crosses `/`).
type GlobMatcher struct{}

// NewGlobMatcher returns a ready-to-use GlobMatcher; it carries no state.
func NewGlobMatcher() GlobMatcher { return GlobMatcher{} }

// Match reports whether name satisfies pattern. When fold is true, both
// sides are compared under Unicode simple case folding first.
func (GlobMatcher) Match(pattern, name string, fold bool) bool {
	if fold {
		pattern, name = foldKey(pattern), foldKey(name)
	}
	return globMatch([]byte(pattern), []byte(name))
}

func globMatch(pat, name []byte) bool {
	for len(pat) > 0 {
		switch {
		case isDoubleStar(pat):
			rest := pat[2:]
			if len(rest) > 0 && rest[0] == '/' {
				rest = rest[1:]
			}
			if len(rest) == 0 {
				return true
			}
			for i := 0; i <= len(name); i++ {
				if globMatch(rest, name[i:]) {
					return true
				}
			}
			return false

		case pat[0] == '*':
			rest := pat[1:]
			for i := 0; i <= len(name); i++ {
				if globMatch(rest, name[i:]) {
					return true
				}
				if i < len(name) && name[i] == '/' {
					break
				}
			}
			return false

		case pat[0] == '?':
			if len(name) == 0 || name[0] == '/' {
				return false
			}
			pat, name = pat[1:], name[1:]

		default:
			if len(name) == 0 || name[0] != pat[0] {
				return false
			}
			pat, name = pat[1:], name[1:]
		}
	}
	return len(name) == 0
}

func isDoubleStar(pat []byte) bool {
	return len(pat) >= 2 && pat[0] == '*' && pat[1] == '*'
}
