package tsg

import (
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrBuilderName is returned when a wrapped builder is not named tsg<Something>.
	ErrBuilderName = errors.Base("builder function name must begin with " + BuilderPrefix)

	// ErrInvalidShape is returned when builder content is not a token, a group, or a slice of those.
	ErrInvalidShape = errors.Base("invalid builder content")

	// ErrUnindexed is raised when the caches of a group that never went through an index pass are read.
	ErrUnindexed = errors.Base("group has not been indexed")
)
