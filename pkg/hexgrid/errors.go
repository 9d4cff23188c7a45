package hexgrid

import "errors"

var (
	// ErrDuplicateCoord is returned when a coordinate is registered twice.
	ErrDuplicateCoord = errors.New("hexgrid: coordinate already registered")

	// ErrAlreadyRealized is returned when a cell's geometry is generated twice.
	ErrAlreadyRealized = errors.New("hexgrid: cell already realized")

	// ErrCeilingTooSmall is returned when a vertex ceiling cannot hold one cell.
	ErrCeilingTooSmall = errors.New("hexgrid: vertex ceiling smaller than one cell")

	// ErrBufferOverflow is returned when a mesh buffer holds more vertices than allowed.
	ErrBufferOverflow = errors.New("hexgrid: mesh buffer exceeds vertex ceiling")
)
