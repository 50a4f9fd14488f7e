// Package errors provides sentinel errors and error types for the armada
// rule engine. Rule violations are always reported as rejections that
// leave the board untouched; callers inspect them with errors.Is() and
// errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common rejection reasons.
var (
	// ErrIllegalMove indicates a move that violates the movement rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNotYourTurn indicates the origin piece does not belong to the
	// side to move.
	ErrNotYourTurn = errors.New("piece does not belong to the side to move")

	// ErrOutOfRange indicates a coordinate whose file is off the board.
	ErrOutOfRange = errors.New("coordinate out of range")

	// ErrRankOverflow indicates rank arithmetic that left the representable
	// range. Treated as a rejection, not a fatal condition.
	ErrRankOverflow = errors.New("rank offset overflow")

	// ErrAwaitingPromotion indicates an ordinary move was attempted while a
	// promotion choice is pending.
	ErrAwaitingPromotion = errors.New("promotion choice pending")

	// ErrNoPromotionPending indicates a promotion choice with nothing to
	// promote.
	ErrNoPromotionPending = errors.New("no promotion pending")

	// ErrBadPromotion indicates an out-of-range promotion choice.
	ErrBadPromotion = errors.New("invalid promotion choice")

	// ErrBadNotation indicates malformed move notation.
	ErrBadNotation = errors.New("malformed move notation")

	// ErrGameNotFound indicates an unknown game session.
	ErrGameNotFound = errors.New("game not found")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a rejection with the move that caused it. From and To
// carry the squares in display notation. It supports unwrapping via
// errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying rejection reason
	From   string // Origin square, if known
	To     string // Destination square, if known
	Detail string // Optional extra context
}

// Error returns a formatted message including all available context.
func (e *MoveError) Error() string {
	msg := "move rejected"
	if e.From != "" || e.To != "" {
		msg = fmt.Sprintf("move %s %s rejected", e.From, e.To)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error, enabling errors.Is() and
// errors.As() to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Is reports whether any error in err's chain matches target. Re-exported
// so callers need only one errors import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap adds context to an error while preserving the underlying error for
// inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
