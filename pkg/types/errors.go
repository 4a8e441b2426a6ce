package types

import "errors"

// Catalog errors.
var (
	ErrUnknownDataset = errors.New("unknown dataset")
	ErrUnknownQuery   = errors.New("unknown query")
	ErrFixtureMissing = errors.New("fixture not loaded")
)

// Fixture loading errors.
var (
	ErrInvalidRecord     = errors.New("invalid fixture record")
	ErrUnknownCollection = errors.New("unknown collection")
)
