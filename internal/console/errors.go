package console

import "errors"

var (
	// ErrMalformedInteger is returned when a selection size is not an integer.
	ErrMalformedInteger = errors.New("you must enter a valid number")
	// ErrInvalidMenuChoice is returned for menu input outside the listed options.
	ErrInvalidMenuChoice = errors.New("invalid option, please select an option from 1 to 6")
)
