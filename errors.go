package wallet

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAmount is returned when an amount is not a finite, strictly
	// positive number.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrEmptyField is returned when a required card field is empty.
	ErrEmptyField = errors.New("card details cannot be empty")

	// ErrSameCard is returned when a transfer names the same card on both sides.
	ErrSameCard = errors.New("cannot transfer money to the same card")

	// ErrCardNotFound is returned when no card has the requested number.
	ErrCardNotFound = errors.New("card not found")

	// ErrInsufficientBalance is returned when a card cannot cover an amount.
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// MissingCardsError reports the sides of a transfer whose card does not exist.
// At least one of Source and Target is set.
type MissingCardsError struct {
	Source string
	Target string
}

func (e *MissingCardsError) Error() string {
	var errs []error
	if e.Source != "" {
		errs = append(errs, fmt.Errorf("source card (%s) not found", e.Source))
	}
	if e.Target != "" {
		errs = append(errs, fmt.Errorf("target card (%s) not found", e.Target))
	}
	return errors.Join(errs...).Error()
}

// Unwrap lets errors.Is match ErrCardNotFound.
func (e *MissingCardsError) Unwrap() error { return ErrCardNotFound }
