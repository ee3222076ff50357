package search

import "errors"

var (
	ErrUnsupportedSearch = errors.New("search: unsupported combination of unknown settings")
	ErrNoCrib            = errors.New("search: no crib to test candidates against")
	ErrNoCandidates      = errors.New("search: candidate catalog is empty")
)
