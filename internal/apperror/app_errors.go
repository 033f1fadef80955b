package apperror

import "errors"

var (
	ErrGameFinished    = errors.New("game is already finished")
	ErrEngineBusy      = errors.New("engine is thinking")
	ErrNotEngineTurn   = errors.New("it's not the engine's turn")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrInvalidCell     = errors.New("invalid cell index")
	ErrSessionNotFound = errors.New("session not found")
)
