package config

import "golang.org/x/text/cases"

var foldCaser = cases.Fold()

// foldKey folds a section or key name the way git compares them: Unicode
// simple case folding, not a plain ASCII lowercase.
func foldKey(s string) string {
	return foldCaser.String(s)
}

// Value is one config entry as recorded by the store: the raw bytes as
// produced by the FileParser, the file it came from, and the include depth
// it was ingested at.
type Value struct {
	Raw   []byte
	File  string
	Depth uint8
}

func (v Value) String() string { return string(v.Raw) }

// SectionHeader names a `[section]` or `[section "subsection"]` header.
// Section names compare case-insensitively; subsection names compare
// case-sensitively, matching git's rule.
type SectionHeader struct {
	Name       string
	Subsection string
	HasSub     bool
}

// EntryKey is the folded lookup key for a (section, subsection, key)
// triple: section and key are case-folded, subsection is kept verbatim.
type EntryKey struct {
	Section    string
	Subsection string
	Key        string
}

func newEntryKey(section, subsection, key string) EntryKey {
	return EntryKey{
		Section:    foldKey(section),
		Subsection: subsection,
		Key:        foldKey(key),
	}
}
