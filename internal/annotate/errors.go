package annotate

import "errors"

var (
	// ErrNoImage is returned by drawing operations when no base image is set.
	ErrNoImage = errors.New("no image loaded")
	// ErrInvalidScaleFactor is returned when a non-positive scale is requested.
	ErrInvalidScaleFactor = errors.New("scale factor must be positive")
	// ErrInvalidGeometry is returned when a stroke cannot accept the segment,
	// for instance because it has already been finalized.
	ErrInvalidGeometry = errors.New("invalid stroke geometry")
	// ErrNoActiveStroke is returned when a stroke is extended or finalized
	// while no draw gesture is in progress.
	ErrNoActiveStroke = errors.New("no active stroke")
)
