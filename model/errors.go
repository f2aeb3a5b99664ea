package model

import "errors"

var (
	ErrMutationFailed  = errors.New("sentiment mutation failed")
	ErrQueryFailed     = errors.New("sentiment query failed")
	ErrNoParticipants  = errors.New("no sentiments submitted yet")
	ErrLevelOutOfRange = errors.New("sentiment level out of range")
)
