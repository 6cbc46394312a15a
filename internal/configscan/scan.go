// Package configscan is the FileParser collaborator: it turns a git-config
// file into an ordered stream of section-header and key-value events
// without building any in-memory config tree itself, so the core loader can
// decide what to do with each event (store it, or treat it as an include).
package configscan

import (
	"io"

	"github.com/go-git/gcfg"
)

// EventKind discriminates the two event shapes a config file produces.
type EventKind int

const (
	// SectionHeader fires once per `[name]` or `[name "subsection"]` line,
	// including when it is immediately repeated with no keys in between.
	SectionHeader EventKind = iota
	// Entry fires once per `key = value` line, scoped to the most recently
	// emitted SectionHeader.
	Entry
)

// Event is one item of the streamed representation of a config file.
// Comments and pure-whitespace lines are consumed by the underlying reader
// and never surface as events, matching git's own indifference to them.
type Event struct {
	Kind       EventKind
	Section    string
	Subsection string
	Key        string
	Value      string
}

// Scan parses r as git-config syntax and calls emit for every section
// header and key-value entry it contains, in file order. It stops and
// returns the first error emit returns, and otherwise returns any error the
// underlying parser reports.
func Scan(r io.Reader, emit func(Event) error) error {
	var emitErr error
	cb := func(section, subsection, key, value string, _ bool) error {
		ev := Event{Section: section, Subsection: subsection}
		if key == "" {
			ev.Kind = SectionHeader
		} else {
			ev.Kind = Entry
			ev.Key = key
			ev.Value = value
		}
		if err := emit(ev); err != nil {
			emitErr = err
			return err
		}
		return nil
	}

	if err := gcfg.ReadWithCallback(r, cb); err != nil {
		if emitErr != nil {
			return emitErr
		}
		return err
	}
	return nil
}
