package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/go-git-core/gitconfig/internal/configscan"
	"github.com/go-git-core/gitconfig/utils/trace"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// FromPaths parses the given seed config files and recursively resolves
// every [include]/[includeIf "<condition>"] section reachable from them,
// returning a single flattened, ordered Store. A missing seed is an error; a
// missing include is silently skipped.
func FromPaths(seeds []string, opts Options) (*Store, error) {
	return FromFilesystem(osfs.New("/"), seeds, opts)
}

// FromFilesystem is FromPaths generalized over a billy.Filesystem, so a
// caller (or a test) can load from an in-memory tree instead of the real
// one.
func FromFilesystem(fs billy.Filesystem, seeds []string, opts Options) (*Store, error) {
	r := &resolver{
		fs:        fs,
		opts:      opts,
		store:     newStore(),
		evaluator: NewConditionEvaluator(),
		paths:     NewPathResolver(),
	}
	for _, seed := range seeds {
		trace.General.Printf("config: loading seed %q", seed)
		if err := r.ingest(seed, 0, true); err != nil {
			return nil, err
		}
		trace.General.Printf("config: finished seed %q", seed)
	}
	return r.store, nil
}

// includeKind classifies the section currently being streamed: whether its
// `path` entries name includes to recurse into, and if so, whether that
// recursion is conditioned on an includeIf match.
type includeKind int

const (
	notInclude includeKind = iota
	unconditionalInclude
	conditionalInclude
)

type resolver struct {
	fs        billy.Filesystem
	opts      Options
	store     *Store
	evaluator ConditionEvaluator
	paths     PathResolver
}

// ingest streams one file's events into the store, recursing into any
// include it finds along the way so that insertion order matches DFS
// preorder over the include graph (spec invariant: values interleave in
// place, not after the including file finishes).
func (r *resolver) ingest(path string, depth uint8, isSeed bool) error {
	f, err := r.fs.Open(path)
	if err != nil {
		if isSeed {
			return &IOError{Path: path, Err: err}
		}
		trace.Include.Printf("config: skipping missing include %q", path)
		return nil
	}
	defer f.Close()

	var (
		curSection, curSubsection string
		kind                      includeKind
		condMatched               bool
	)

	scanErr := configscan.Scan(f, func(ev configscan.Event) error {
		switch ev.Kind {
		case configscan.SectionHeader:
			curSection, curSubsection = ev.Section, ev.Subsection
			switch {
			case strings.EqualFold(ev.Section, "include"):
				kind = unconditionalInclude
			case strings.EqualFold(ev.Section, "includeIf"):
				kind = conditionalInclude
				condMatched = r.evaluator.Evaluate(ev.Subsection, r.opts, filepath.Dir(path))
				trace.Condition.Printf("config: includeIf %q in %q matched: %t", ev.Subsection, path, condMatched)
			default:
				kind = notInclude
			}
			return nil

		case configscan.Entry:
			if kind != notInclude && strings.EqualFold(ev.Key, "path") {
				if kind == conditionalInclude && !condMatched {
					return nil
				}
				return r.descend(ev.Value, path, depth)
			}
			r.store.append(newEntryKey(curSection, curSubsection, ev.Key), Value{
				Raw:   []byte(ev.Value),
				File:  path,
				Depth: depth,
			})
			return nil

		default:
			return nil
		}
	})
	if scanErr == nil {
		return nil
	}

	var depthErr *IncludeDepthExceededError
	if errors.As(scanErr, &depthErr) {
		return scanErr
	}
	var ioErr *IOError
	if errors.As(scanErr, &ioErr) {
		return scanErr
	}
	return &ParseError{Path: path, Err: scanErr}
}

// descend resolves and recurses into one include's path value, enforcing
// the depth cap. Cycle tolerance is the depth cap alone: there is no
// visited-path set, so A->B->A->B... expands until the cap, by design.
func (r *resolver) descend(raw, includingFile string, depth uint8) error {
	if depth+1 > r.opts.maxDepth() {
		if r.opts.ErrorOnMaxDepthExceeded {
			return &IncludeDepthExceededError{MaxDepth: r.opts.maxDepth()}
		}
		return nil
	}

	target, ok := r.paths.Resolve(raw, includingFile)
	if !ok {
		return nil
	}
	trace.Include.Printf("config: %q includes %q at depth %d", includingFile, target, depth+1)
	return r.ingest(target, depth+1, false)
}
