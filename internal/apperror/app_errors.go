package apperror

import "errors"

// Categories. Every concrete error below unwraps to exactly one of them, so
// callers can classify with errors.Is without knowing the concrete cause.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
	ErrTransport    = errors.New("transport failure")
)

var (
	ErrRoomNotFound    = newError(ErrNotFound, "room not found")
	ErrPlayerNotInRoom = newError(ErrNotFound, "player is not in the room")

	ErrRoomExists     = newError(ErrConflict, "room already exists")
	ErrRoomFull       = newError(ErrConflict, "room is full")
	ErrGameNotStarted = newError(ErrConflict, "game is not started")
	ErrGameFinished   = newError(ErrConflict, "game is already finished")
	ErrNotYourTurn    = newError(ErrConflict, "it's not your turn")
	ErrCellOccupied   = newError(ErrConflict, "cell is already occupied")

	ErrInvalidCell   = newError(ErrInvalidInput, "invalid cell index")
	ErrInvalidPlayer = newError(ErrInvalidInput, "invalid player")
	ErrInvalidRoom   = newError(ErrInvalidInput, "invalid room")
)

type appError struct {
	kind error
	msg  string
}

func newError(kind error, msg string) error {
	return &appError{kind: kind, msg: msg}
}

func (that *appError) Error() string {
	return that.msg
}

func (that *appError) Unwrap() error {
	return that.kind
}
