package config

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Store is the flattened, ordered multi-map a load produces: every
// (section, subsection, key) triple maps to every value recorded for it, in
// the DFS-preorder the IncludeResolver visited files in. Lookups are
// case-insensitive on section and key, case-sensitive on subsection. A Store
// is immutable once returned by FromPaths/FromFilesystem and safe to share
// across goroutines for reads.
type Store struct {
	order []entry
	// index maps an EntryKey to the positions in order holding its values.
	// linkedhashmap keeps the order keys were first seen, which is useful
	// for anyone enumerating the whole store (e.g. a future config-dump
	// caller), even though lookups here only care about the slice value.
	index *linkedhashmap.Map
}

type entry struct {
	key   EntryKey
	value Value
}

func newStore() *Store {
	return &Store{index: linkedhashmap.New()}
}

func (s *Store) append(key EntryKey, v Value) {
	pos := len(s.order)
	s.order = append(s.order, entry{key: key, value: v})

	if existing, ok := s.index.Get(key); ok {
		s.index.Put(key, append(existing.([]int), pos))
		return
	}
	s.index.Put(key, []int{pos})
}

func (s *Store) positions(section, subsection, key string) ([]int, bool) {
	raw, ok := s.index.Get(newEntryKey(section, subsection, key))
	if !ok {
		return nil, false
	}
	return raw.([]int), true
}

// RawValue returns the last recorded value for (section, subsection, key).
func (s *Store) RawValue(section, subsection, key string) ([]byte, error) {
	positions, ok := s.positions(section, subsection, key)
	if !ok {
		return nil, ErrNotFound
	}
	return s.order[positions[len(positions)-1]].value.Raw, nil
}

// RawMultiValue returns every recorded value for (section, subsection, key)
// in insertion order.
func (s *Store) RawMultiValue(section, subsection, key string) ([][]byte, error) {
	positions, ok := s.positions(section, subsection, key)
	if !ok {
		return nil, ErrNotFound
	}
	values := make([][]byte, len(positions))
	for i, pos := range positions {
		values[i] = s.order[pos].value.Raw
	}
	return values, nil
}

// Boolean parses the last recorded value for (section, subsection, key)
// using git's boolean rules: true/yes/on/1/"" => true; false/no/off/0 =>
// false (case-insensitive). ok is false when the key is absent; err is
// non-nil when the key is present but its value isn't a recognized boolean.
func (s *Store) Boolean(section, subsection, key string) (value bool, err error, ok bool) {
	raw, lookupErr := s.RawValue(section, subsection, key)
	if lookupErr != nil {
		return false, nil, false
	}
	value, err = parseBoolean(string(raw))
	return value, err, true
}

// Strings decodes every recorded value for (section, subsection, key) as a
// UTF-8-lossy string, in insertion order.
func (s *Store) Strings(section, subsection, key string) ([]string, bool) {
	values, err := s.RawMultiValue(section, subsection, key)
	if err != nil {
		return nil, false
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out, true
}

// Len returns the total number of stored entries, including duplicates
// produced by an include cycle.
func (s *Store) Len() int { return len(s.order) }

func parseBoolean(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "true", "yes", "on", "1", "":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	default:
		return false, &ParseError{Err: fmt.Errorf("config: not a valid boolean value: %q", raw)}
	}
}
