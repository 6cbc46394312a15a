package protocol

import "strings"

// Command names one of the Git fetch-protocol v2 commands a client can send
// (ls-refs, fetch, ...). The type exists so a caller can describe a fetch
// request without this module running the protocol state machine itself.
type Command string

const (
	CommandLsRefs Command = "ls-refs"
	CommandFetch  Command = "fetch"
)

// Action is the delegate-facing decision a fetch negotiation step produces:
// keep negotiating, or stop and move on to the pack phase.
type Action int

const (
	ActionContinue Action = iota
	ActionDone
	ActionClose
)

func (a Action) String() string {
	switch a {
	case ActionContinue:
		return "continue"
	case ActionDone:
		return "done"
	case ActionClose:
		return "close"
	default:
		return "unknown"
	}
}

// Agent formats name as the agent string a client announces to a server,
// ensuring it carries the "git/" prefix every server-side agent= capability
// parser expects.
func Agent(name string) string {
	if !strings.HasPrefix(name, "git/") {
		return "git/" + name
	}
	return name
}
