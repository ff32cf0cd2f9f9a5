package session

import "errors"

var (
	// ErrSessionSubmitted is returned by any mutating operation after
	// submission. A submitted session is terminal.
	ErrSessionSubmitted = errors.New("session already submitted")

	// ErrInvalidPosition is returned for navigation or bookmark targets
	// outside the question sequence. A correctly constrained UI never
	// produces this; the engine guards it anyway.
	ErrInvalidPosition = errors.New("question position out of range")

	// ErrInvalidOption is returned when a selected option index is not a
	// valid option of the current question.
	ErrInvalidOption = errors.New("option index out of range")
)
