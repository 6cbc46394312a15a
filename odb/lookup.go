// Package odb defines the error vocabulary and lookup interface a caller
// uses to resolve object ids and short prefixes against an object database.
// No backing implementation ships here; nothing in the config loader calls
// into it.
package odb

import "fmt"

// ObjectID is an opaque object identifier, hex-encoded, as it would appear
// in a tree, commit, or ref.
type ObjectID string

// Kind is the kind of object a Lookup result or request names.
type Kind int

const (
	KindUnknown Kind = iota
	KindCommit
	KindTree
	KindBlob
	KindTag
)

func (k Kind) String() string {
	switch k {
	case KindCommit:
		return "commit"
	case KindTree:
		return "tree"
	case KindBlob:
		return "blob"
	case KindTag:
		return "tag"
	default:
		return "unknown"
	}
}

// NotFoundError reports that no object matches id.
type NotFoundError struct {
	ID ObjectID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("odb: object %q not found", e.ID)
}

// AmbiguousPrefixError reports that a short object id prefix matched more
// than one object.
type AmbiguousPrefixError struct {
	Prefix     string
	Candidates []ObjectID
}

func (e *AmbiguousPrefixError) Error() string {
	return fmt.Sprintf("odb: prefix %q is ambiguous (%d candidates)", e.Prefix, len(e.Candidates))
}

// ObjectKindMismatchError reports that an object was found but is not of
// the kind the caller required.
type ObjectKindMismatchError struct {
	ID       ObjectID
	Expected Kind
	Actual   Kind
}

func (e *ObjectKindMismatchError) Error() string {
	return fmt.Sprintf("odb: object %q is a %s, expected a %s", e.ID, e.Actual, e.Expected)
}

// Lookup resolves object ids (and unambiguous prefixes of them) to object
// metadata.
type Lookup interface {
	// Find resolves a full object id.
	Find(id ObjectID) (Kind, error)
	// FindPrefix resolves an unambiguous short object id prefix.
	FindPrefix(prefix string) (ObjectID, Kind, error)
}
