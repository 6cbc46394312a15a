package config

// Core is the typed view of the `[core]` section, materialized from a
// loaded Store.
type Core struct {
	Bare          bool
	IgnoreCase    bool
	FileMode      bool
	SymlinksValue bool
}

// NewCore materializes a Core from a loaded store. Missing keys keep their
// git-documented default; a malformed boolean value is not surfaced as an
// error and leaves its field false (not the default), matching git's own
// "only the typed getter itself fails" model (the raw value is still
// retrievable via Store.RawValue).
func NewCore(s *Store) Core {
	var c Core
	c.Bare, _, _ = s.Boolean("core", "", "bare")
	c.IgnoreCase, _, _ = s.Boolean("core", "", "ignorecase")
	if v, err, ok := s.Boolean("core", "", "filemode"); ok && err == nil {
		c.FileMode = v
	} else if !ok {
		c.FileMode = true
	}
	if v, err, ok := s.Boolean("core", "", "symlinks"); ok && err == nil {
		c.SymlinksValue = v
	} else if !ok {
		c.SymlinksValue = true
	}
	return c
}

// User is the typed view of the `[user]` section.
type User struct {
	Name  string
	Email string
}

// NewUser materializes a User from a loaded store.
func NewUser(s *Store) User {
	name, _ := s.RawValue("user", "", "name")
	email, _ := s.RawValue("user", "", "email")
	return User{Name: string(name), Email: string(email)}
}
