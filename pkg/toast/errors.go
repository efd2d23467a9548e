package toast

import "errors"

var (
	ErrEmptyMessage     = errors.New("toast: message is required")
	ErrInvalidDuration  = errors.New("toast: duration must be positive")
	ErrControllerClosed = errors.New("toast: controller is closed")
	ErrNotFound         = errors.New("toast: not found")
)
