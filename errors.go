package draft

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common operations.
var (
	// ErrUnknownMode is returned when a DiagramRoot carries an
	// unrecognized mode discriminant.
	ErrUnknownMode = errors.New("draft: unknown diagram mode")

	// ErrNilDiagram is returned when encoding or caching a nil root.
	ErrNilDiagram = errors.New("draft: nil diagram root")
)

// ModeError reports an invalid diagram mode discriminant.
type ModeError struct {
	mode Mode
}

// Error returns the error string.
func (e *ModeError) Error() string {
	return fmt.Sprintf("draft: unknown diagram mode (%d)", uint8(e.mode))
}

// Is reports whether the target error matches ModeError.
// This allows errors.Is(modeErr, ErrUnknownMode) to return true.
func (e *ModeError) Is(err error) bool {
	return err == ErrUnknownMode
}

// Mode returns the offending mode value.
func (e *ModeError) Mode() Mode { return e.mode }

// NewModeError returns a new ModeError for the given mode value.
func NewModeError(m Mode) *ModeError {
	return &ModeError{mode: m}
}

// IsUnknownMode returns true if the error reports an unknown diagram mode.
func IsUnknownMode(err error) bool {
	if err == nil {
		return false
	}
	var e *ModeError
	return errors.As(err, &e) || errors.Is(err, ErrUnknownMode)
}
