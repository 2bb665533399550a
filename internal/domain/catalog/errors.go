package catalog

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrInvalidCatalog = errors.New("invalid hero catalog")
	ErrLoadCatalog    = errors.New("load hero catalog failed")
)
