package ordered

import "errors"

var (
	ErrNotFound       = errors.New("element not present in the container")
	ErrEmptyContainer = errors.New("the container is empty")
)

var (
	ErrSameBoundary      = errors.New("the start and end boundaries must be distinct elements")
	ErrDuplicateElement  = errors.New("an element may appear at most once per call")
	ErrNegativeCount     = errors.New("the item count must not be negative")
	ErrAccessorsRequired = errors.New("adopting already keyed elements requires accessor storage")
)
