package domain

import (
	"fmt"
	"strings"
)

// OrderState describes how the characters of a word are ordered.
type OrderState int

const (
	// Ascending means every character is >= the one before it.
	Ascending OrderState = iota
	// Descending means every character is <= the one before it (and the word is not Ascending).
	Descending
	// Unordered covers everything else.
	Unordered
)

var stateNames = [...]string{"ascending", "descending", "unordered"}

var stateLabels = [...]string{"IN ORDER", "REVERSE ORDER", "NOT IN ORDER"}

// AllOrderStates lists the states in declaration order.
func AllOrderStates() []OrderState {
	return []OrderState{Ascending, Descending, Unordered}
}

func (s OrderState) valid() bool {
	return s >= Ascending && s <= Unordered
}

// String returns the machine name of the state (e.g. "ascending").
func (s OrderState) String() string {
	if !s.valid() {
		return fmt.Sprintf("OrderState(%d)", int(s))
	}
	return stateNames[s]
}

// Label returns the human readable label printed next to a word.
func (s OrderState) Label() string {
	if !s.valid() {
		return s.String()
	}
	return stateLabels[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s OrderState) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOrderState, int(s))
	}
	return []byte(stateNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *OrderState) UnmarshalText(text []byte) error {
	parsed, err := ParseOrderState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseOrderState accepts either the machine name or the label, case-insensitively.
func ParseOrderState(name string) (OrderState, error) {
	for _, st := range AllOrderStates() {
		if strings.EqualFold(name, stateNames[st]) || strings.EqualFold(name, stateLabels[st]) {
			return st, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrderState, name)
}

// OrderResult pairs a word with its classification.
type OrderResult struct {
	Word  string     `json:"word"`
	State OrderState `json:"state"`
}

// String renders the result as "<word> <LABEL>".
func (r OrderResult) String() string {
	return r.Word + " " + r.State.Label()
}
