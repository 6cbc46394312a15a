// Package credentials reads credential helper configuration out of a
// *config.Store and describes the Get/Store/Erase actions a helper process
// would run. It does not itself exec a subprocess.
package credentials

import (
	"io"

	"github.com/go-git-core/gitconfig/config"
)

// Credential is the typed view of a `[credential]` or
// `[credential "<url>"]` section.
type Credential struct {
	Helper      []string
	Username    string
	UseHTTPPath bool
}

// NewCredential reads the credential configuration for subsection (pass ""
// for the unscoped [credential] section) out of a loaded store.
func NewCredential(s *config.Store, subsection string) Credential {
	helpers, _ := s.Strings("credential", subsection, "helper")
	username, _ := s.RawValue("credential", subsection, "username")
	useHTTPPath, _, _ := s.Boolean("credential", subsection, "usehttppath")
	return Credential{
		Helper:      helpers,
		Username:    string(username),
		UseHTTPPath: useHTTPPath,
	}
}

// ActionKind is the credential helper protocol verb being requested.
type ActionKind int

const (
	ActionGet ActionKind = iota
	ActionStore
	ActionErase
)

func (a ActionKind) String() string {
	switch a {
	case ActionGet:
		return "get"
	case ActionStore:
		return "store"
	case ActionErase:
		return "erase"
	default:
		return "unknown"
	}
}

// Action describes one invocation of a credential helper: which verb, and
// the context (protocol/host/path) the helper protocol passes on stdin.
type Action struct {
	Kind     ActionKind
	Protocol string
	Host     string
	Path     string
	Username string
}

// Helper starts and stops a credential helper process. No implementation of
// it ships here; only the interface a caller would drive is specified.
type Helper interface {
	// Start launches the helper for action and returns handles to write
	// the request and (for ActionGet) read the response. For ActionStore
	// and ActionErase the receive half may be nil.
	Start(action Action) (send io.WriteCloser, receive io.ReadCloser, err error)
	// Finish waits for the helper to exit and reports its result.
	Finish() error
}
