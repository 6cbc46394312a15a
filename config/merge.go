package config

import "dario.cat/mergo"

// MergeScopes combines the typed Core views materialized from each scope's
// Store, giving later scopes priority over earlier ones: system, then
// global, then local. Only non-zero fields of a later scope override: a
// false field in a later scope leaves an earlier scope's true in place.
func MergeScopes(system, global, local Core) Core {
	merged := system
	_ = mergo.Merge(&merged, global, mergo.WithOverride)
	_ = mergo.Merge(&merged, local, mergo.WithOverride)
	return merged
}

// MergeUsers combines typed User views with the same system < global <
// local precedence as MergeScopes; an empty field in a later scope does not
// override an earlier scope's value.
func MergeUsers(system, global, local User) User {
	merged := system
	_ = mergo.Merge(&merged, global, mergo.WithOverride)
	_ = mergo.Merge(&merged, local, mergo.WithOverride)
	return merged
}
