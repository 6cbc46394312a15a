package credentials_test

import (
	"testing"

	"github.com/go-git-core/gitconfig/config"
	"github.com/go-git-core/gitconfig/credentials"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeFrom(t *testing.T, content string) *config.Store {
	t.Helper()
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "/gitconfig", []byte(content), 0o644))
	store, err := config.FromFilesystem(fs, []string{"/gitconfig"}, config.NewOptions())
	require.NoError(t, err)
	return store
}

func TestNewCredentialUnscoped(t *testing.T) {
	store := storeFrom(t, "[credential]\n\thelper = store\n\tusername = alice\n\tusehttppath = true\n")

	cred := credentials.NewCredential(store, "")
	assert.Equal(t, []string{"store"}, cred.Helper)
	assert.Equal(t, "alice", cred.Username)
	assert.True(t, cred.UseHTTPPath)
}

func TestNewCredentialScopedBySubsection(t *testing.T) {
	store := storeFrom(t, "[credential \"https://example.com\"]\n\thelper = cache\n\thelper = store\n\tusername = bob\n")

	cred := credentials.NewCredential(store, "https://example.com")
	assert.Equal(t, []string{"cache", "store"}, cred.Helper)
	assert.Equal(t, "bob", cred.Username)
	assert.False(t, cred.UseHTTPPath)
}

func TestActionKindString(t *testing.T) {
	assert.Equal(t, "get", credentials.ActionGet.String())
	assert.Equal(t, "store", credentials.ActionStore.String())
	assert.Equal(t, "erase", credentials.ActionErase.String())
}
