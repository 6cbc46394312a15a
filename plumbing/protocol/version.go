// Package protocol describes the fetch protocol surface this module treats
// as an external collaborator: the data a caller would use to describe a
// fetch, not a running protocol state machine.
package protocol

import "strconv"

// Version represents a Git wire protocol version.
type Version int

const (
	// VersionUnknown is an unrecognized or unnegotiated protocol version.
	VersionUnknown Version = iota - 1

	// VersionV0 is the original Git protocol.
	VersionV0

	// VersionV1 is protocol v1: same wire format as v0, with an explicit
	// version announcement.
	VersionV1

	// VersionV2 is protocol v2.
	VersionV2
)

// String returns the human-readable form of v.
func (v Version) String() string {
	if v < 0 {
		return "unknown"
	}
	return "version " + strconv.Itoa(int(v))
}

// Parameter returns v formatted the way it appears on the wire, e.g. in a
// Git-Protocol header or capability announcement.
func (v Version) Parameter() string {
	if v < 0 {
		return ""
	}
	return "version=" + strconv.Itoa(int(v))
}
