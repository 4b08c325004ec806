// Package consts provides operation name constants for the hook system.
package consts

// Operation names for the hook system.
const (
	Explore       = "Explore"
	ExploreTarget = "ExploreTarget"
)
