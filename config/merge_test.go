package config_test

import (
	"github.com/go-git-core/gitconfig/config"
	. "gopkg.in/check.v1"
)

type MergeSuite struct{}

var _ = Suite(&MergeSuite{})

func (s *MergeSuite) TestMergeScopesLocalWins(c *C) {
	system := config.Core{FileMode: true, SymlinksValue: true}
	global := config.Core{IgnoreCase: true}
	local := config.Core{Bare: true}

	merged := config.MergeScopes(system, global, local)
	c.Assert(merged.Bare, Equals, true)
	c.Assert(merged.IgnoreCase, Equals, true)
	c.Assert(merged.FileMode, Equals, true)
}

func (s *MergeSuite) TestMergeUsersOverride(c *C) {
	system := config.User{Name: "System User", Email: "sys@example.com"}
	global := config.User{Email: "global@example.com"}
	local := config.User{}

	merged := config.MergeUsers(system, global, local)
	c.Assert(merged.Name, Equals, "System User")
	c.Assert(merged.Email, Equals, "global@example.com")
}
