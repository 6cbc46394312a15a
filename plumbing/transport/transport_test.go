package transport_test

import (
	"testing"

	"github.com/go-git-core/gitconfig/plumbing/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEndpointHTTPS(t *testing.T) {
	e, err := transport.NewEndpoint("https://github.com/go-git-core/gitconfig")
	require.NoError(t, err)
	assert.Equal(t, "https", e.Protocol)
	assert.Equal(t, "github.com", e.Host)
	assert.Equal(t, "/go-git-core/gitconfig", e.Path)
}

func TestNewEndpointSCPLike(t *testing.T) {
	e, err := transport.NewEndpoint("git@github.com:go-git-core/gitconfig.git")
	require.NoError(t, err)
	assert.Equal(t, "ssh", e.Protocol)
	assert.Equal(t, "git", e.User)
	assert.Equal(t, "github.com", e.Host)
	assert.Equal(t, "go-git-core/gitconfig.git", e.Path)
}

func TestNewEndpointLocalPath(t *testing.T) {
	e, err := transport.NewEndpoint("/srv/git/repo.git")
	require.NoError(t, err)
	assert.Equal(t, "file", e.Protocol)
	assert.Equal(t, "/srv/git/repo.git", e.Path)
}

func TestEndpointString(t *testing.T) {
	e, err := transport.NewEndpoint("https://user@github.com/org/repo")
	require.NoError(t, err)
	assert.Equal(t, "https://user@github.com/org/repo", e.String())
}
