package engine

import (
	"errors"
	"fmt"

	"github.com/piwi3910/RoomLayout/internal/model"
)

var (
	// ErrInvalidRoom is returned when a room side is not a finite positive number.
	ErrInvalidRoom = errors.New("invalid room dimensions")

	// ErrCapacity is returned when the requested furniture exceeds the area gate.
	ErrCapacity = errors.New("furniture exceeds available space")

	// ErrUnplaceable is returned under the fail-fast policy when an item runs
	// out of attempts.
	ErrUnplaceable = errors.New("furniture item could not be placed")

	// ErrPredictor is returned when the anchor prediction fails.
	ErrPredictor = errors.New("anchor prediction failed")
)

// CapacityError reports an area gate rejection.
type CapacityError struct {
	Estimate model.CapacityEstimate
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("selected furniture exceeds available space in the room: %.2f sq units requested, %.2f allowed",
		e.Estimate.FurnitureArea, e.Estimate.AllowedArea)
}

func (e *CapacityError) Unwrap() error {
	return ErrCapacity
}

// UnplaceableError names the item that exhausted its retry budget.
type UnplaceableError struct {
	Index    int
	Kind     string
	Attempts int
}

func (e *UnplaceableError) Error() string {
	return fmt.Sprintf("could not place %s (item %d) after %d attempts", e.Kind, e.Index, e.Attempts)
}

func (e *UnplaceableError) Unwrap() error {
	return ErrUnplaceable
}

// PredictorError wraps the failure returned by the anchor predictor.
type PredictorError struct {
	Err error
}

func (e *PredictorError) Error() string {
	return fmt.Sprintf("%v: %v", ErrPredictor, e.Err)
}

// Unwrap exposes both ErrPredictor and the underlying cause.
func (e *PredictorError) Unwrap() []error {
	return []error{ErrPredictor, e.Err}
}
