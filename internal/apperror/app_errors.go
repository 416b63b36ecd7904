package apperror

import "errors"

var (
	ErrInvalidState         = errors.New("invalid game state")
	ErrNotYourTurn          = errors.New("it's not your turn")
	ErrInvalidPit           = errors.New("you cannot make move on that pit")
	ErrEmptyPit             = errors.New("there are no stones in that pit")
	ErrInvalidConfiguration = errors.New("invalid board configuration")
	ErrSessionNotFound      = errors.New("no game for this session")
	ErrInvalidAction        = errors.New("unknown action")
)
