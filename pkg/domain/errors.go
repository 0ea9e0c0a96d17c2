package domain

import (
	"errors"
	"strings"
)

// NoInputMessage is what the CLI prints when there is nothing to read.
const NoInputMessage = "No input provided"

// ErrNoInput is returned when neither a readable path nor the pipe flag was given.
// Its text is NoInputMessage in lower case.
var ErrNoInput = errors.New(strings.ToLower(NoInputMessage))

// ErrUnknownOrderState is returned when parsing an order state name fails.
var ErrUnknownOrderState = errors.New("unknown order state")
