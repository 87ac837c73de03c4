package apperror

import "errors"

var (
	ErrInvalidSize       = errors.New("invalid board size")
	ErrOutOfBounds       = errors.New("coordinates are out of bounds")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidMark       = errors.New("invalid mark")
	ErrMatchFinished     = errors.New("match is already finished")
	ErrMatchInProgress   = errors.New("match is in progress")
	ErrNoActiveMatch     = errors.New("no active match")
	ErrActionUnavailable = errors.New("action is not available on this screen")
	ErrOptionNotOffered  = errors.New("option is not offered")
)
