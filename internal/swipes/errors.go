package swipes

import "errors"

// Помилки валідації, доступу та конфліктів ядра. API-шар мапить їх на
// HTTP-статуси; будь-яка інша помилка — відмова залежності.
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidTarget = errors.New("self swipe is not allowed")
	ErrEventNotFound = errors.New("event not found")
	ErrNotMember     = errors.New("not a member of the event")
	ErrBlocked       = errors.New("member is blocked")
	ErrEventLocked   = errors.New("event is locked")
	ErrOutsideWindow = errors.New("outside the swipe window")
	ErrAlreadySwiped = errors.New("swipe already recorded")
)
