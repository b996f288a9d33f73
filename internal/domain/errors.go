package domain

import "errors"

// Expected domain outcomes. Handlers turn these into user-facing replies;
// anything else is a store failure.
var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrWrongPassword   = errors.New("wrong password")
	ErrNotAMember      = errors.New("not a room member")
	ErrRoomCodeTaken   = errors.New("room code already taken")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidTime     = errors.New("invalid time")
	ErrPastTime        = errors.New("time is not in the future")
)
