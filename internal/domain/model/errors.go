package model

import "errors"

var (
	ErrInvalidCoordinates    = errors.New("invalid coordinates")
	ErrProviderUnavailable   = errors.New("weather provider unavailable")
	ErrProviderDataMalformed = errors.New("weather provider returned malformed data")
	ErrPersistenceFailure    = errors.New("persistence failure")
	ErrTerritoryNotFound     = errors.New("territory not found")
	ErrInvalidGrade          = errors.New("invalid grade")
)
