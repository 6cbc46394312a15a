package config_test

import (
	"github.com/go-git-core/gitconfig/config"
	"github.com/go-git/go-billy/v5/memfs"
	. "gopkg.in/check.v1"
)

type TypedSuite struct{}

var _ = Suite(&TypedSuite{})

func (s *TypedSuite) store(c *C, content string) *config.Store {
	fs := memfs.New()
	f, err := fs.Create("/gitconfig")
	c.Assert(err, IsNil)
	_, err = f.Write([]byte(content))
	c.Assert(err, IsNil)
	c.Assert(f.Close(), IsNil)

	store, err := config.FromFilesystem(fs, []string{"/gitconfig"}, config.NewOptions())
	c.Assert(err, IsNil)
	return store
}

func (s *TypedSuite) TestNewCoreDefaults(c *C) {
	store := s.store(c, "[core]\nbare = true\n")
	core := config.NewCore(store)
	c.Assert(core.Bare, Equals, true)
	c.Assert(core.FileMode, Equals, true)
	c.Assert(core.SymlinksValue, Equals, true)
	c.Assert(core.IgnoreCase, Equals, false)
}

func (s *TypedSuite) TestNewCoreExplicitFalse(c *C) {
	store := s.store(c, "[core]\nfilemode = false\nsymlinks = false\n")
	core := config.NewCore(store)
	c.Assert(core.FileMode, Equals, false)
	c.Assert(core.SymlinksValue, Equals, false)
}

func (s *TypedSuite) TestNewUser(c *C) {
	store := s.store(c, "[user]\nname = Ada Lovelace\nemail = ada@example.com\n")
	user := config.NewUser(store)
	c.Assert(user.Name, Equals, "Ada Lovelace")
	c.Assert(user.Email, Equals, "ada@example.com")
}
