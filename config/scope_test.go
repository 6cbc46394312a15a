package config_test

import (
	"runtime"

	"github.com/go-git-core/gitconfig/config"
	. "gopkg.in/check.v1"
)

type ScopeSuite struct{}

var _ = Suite(&ScopeSuite{})

func (s *ScopeSuite) TestSystemScope(c *C) {
	paths, err := config.Paths(config.SystemScope)
	c.Assert(err, IsNil)
	if runtime.GOOS == "windows" {
		c.Assert(paths, IsNil)
		return
	}
	c.Assert(paths, DeepEquals, []string{"/etc/gitconfig"})
}

func (s *ScopeSuite) TestGlobalScopeOrdering(c *C) {
	paths, err := config.Paths(config.GlobalScope)
	c.Assert(err, IsNil)
	c.Assert(len(paths), Equals, 2)
	c.Assert(paths[0], Matches, ".*\\.gitconfig$")
}

func (s *ScopeSuite) TestLocalScopeIsEmpty(c *C) {
	paths, err := config.Paths(config.LocalScope)
	c.Assert(err, IsNil)
	c.Assert(paths, IsNil)
}
