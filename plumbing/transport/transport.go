// Package transport describes the blocking transport boundary a config
// consumer dials through: enough of an Endpoint/Session/AuthMethod
// vocabulary for a caller to name a remote and an auth method, with no
// actual dialing implemented.
package transport

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	giturl "github.com/go-git-core/gitconfig/internal/url"
	"github.com/go-git-core/gitconfig/plumbing/protocol"
	sshconfig "github.com/kevinburke/ssh_config"
)

var (
	ErrRepositoryNotFound     = errors.New("repository not found")
	ErrEmptyRemoteRepository  = errors.New("remote repository is empty")
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrAuthorizationFailed    = errors.New("authorization failed")
	ErrInvalidAuthMethod      = errors.New("invalid auth method")
	ErrAlreadyConnected       = errors.New("session already established")
)

// Transport can open a Session against an Endpoint. No implementation of it
// ships here: only the interface a caller would see is specified.
type Transport interface {
	NewSession(endpoint *Endpoint, auth AuthMethod) (Session, error)
	SupportedProtocols() []protocol.Version
}

// Session represents one connected, blocking exchange with a remote.
type Session interface {
	Close() error
}

// AuthMethod identifies how a Session authenticates.
type AuthMethod interface {
	fmt.Stringer
	Name() string
}

// Endpoint represents a Git remote URL in any supported form: full URL,
// scp-like (user@host:path), or a bare local path.
type Endpoint struct {
	Protocol string
	User     string
	Password string
	Host     string
	Port     int
	Path     string
}

var defaultPorts = map[string]int{
	"http":  80,
	"https": 443,
	"git":   9418,
	"ssh":   22,
}

// String renders the endpoint back into URL form.
func (e *Endpoint) String() string {
	var buf bytes.Buffer
	if e.Protocol != "" {
		buf.WriteString(e.Protocol)
		buf.WriteByte(':')
	}
	if e.Protocol != "" || e.Host != "" || e.User != "" {
		buf.WriteString("//")
		if e.User != "" {
			buf.WriteString(url.PathEscape(e.User))
			if e.Password != "" {
				buf.WriteByte(':')
				buf.WriteString(url.PathEscape(e.Password))
			}
			buf.WriteByte('@')
		}
		if e.Host != "" {
			buf.WriteString(e.Host)
			if port, ok := defaultPorts[strings.ToLower(e.Protocol)]; !ok || port != e.Port {
				if e.Port != 0 {
					fmt.Fprintf(&buf, ":%d", e.Port)
				}
			}
		}
	}
	if e.Path != "" && e.Path[0] != '/' && e.Host != "" {
		buf.WriteByte('/')
	}
	buf.WriteString(e.Path)
	return buf.String()
}

// NewEndpoint parses a Git remote URL in any of the forms NewEndpoint
// understands: full URL, scp-like, or bare local path.
func NewEndpoint(raw string) (*Endpoint, error) {
	if e, ok := parseSCPLike(raw); ok {
		return resolveSSHAliases(e), nil
	}
	if e, ok := parseFile(raw); ok {
		return e, nil
	}
	return parseURL(raw)
}

func parseURL(raw string) (*Endpoint, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("invalid endpoint: %s", raw)
	}

	var user, pass string
	if u.User != nil {
		user = u.User.Username()
		pass, _ = u.User.Password()
	}

	e := &Endpoint{
		Protocol: u.Scheme,
		User:     user,
		Password: pass,
		Host:     u.Hostname(),
		Port:     portOf(u),
		Path:     pathOf(u),
	}
	if e.Protocol == "ssh" {
		e = resolveSSHAliases(e)
	}
	return e, nil
}

func portOf(u *url.URL) int {
	p := u.Port()
	if p == "" {
		return 0
	}
	i, err := strconv.Atoi(p)
	if err != nil {
		return 0
	}
	return i
}

func pathOf(u *url.URL) string {
	res := u.Path
	if u.RawQuery != "" {
		res += "?" + u.RawQuery
	}
	return res
}

func parseSCPLike(raw string) (*Endpoint, bool) {
	if giturl.MatchesScheme(raw) || !giturl.MatchesScpLike(raw) {
		return nil, false
	}
	user, host, portStr, path := giturl.FindScpLikeComponents(raw)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		port = 22
	}
	return &Endpoint{Protocol: "ssh", User: user, Host: host, Port: port, Path: path}, true
}

func parseFile(raw string) (*Endpoint, bool) {
	if giturl.MatchesScheme(raw) {
		return nil, false
	}
	return &Endpoint{Protocol: "file", Path: raw}, true
}

// resolveSSHAliases fills in Host/Port/User from the user's ~/.ssh/config
// when the endpoint's own value was left at its default, the same alias
// resolution an ssh(1)-based transport would apply before dialing.
func resolveSSHAliases(e *Endpoint) *Endpoint {
	if e.Host == "" {
		return e
	}
	alias := e.Host
	if e.Port == 0 || e.Port == defaultPorts["ssh"] {
		if portStr := sshconfig.Get(alias, "Port"); portStr != "" {
			if p, err := strconv.Atoi(portStr); err == nil {
				e.Port = p
			}
		}
	}
	if e.User == "" {
		if user := sshconfig.Get(alias, "User"); user != "" {
			e.User = user
		}
	}
	if hostName := sshconfig.Get(alias, "HostName"); hostName != "" {
		e.Host = hostName
	}
	return e
}
