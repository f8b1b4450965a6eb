package partial

import "errors"

// Sentinel errors for partial operations.
var (
	ErrInvalidName        = errors.New("invalid component name")
	ErrDuplicateComponent = errors.New("component already registered")
	ErrNilComponent       = errors.New("component cannot be nil")
	ErrUnresolvedPartial  = errors.New("unresolved partial placeholder")
	ErrRender             = errors.New("partial render failed")
	ErrComponentDir       = errors.New("failed to load component directory")
)
