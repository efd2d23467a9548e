package variant

import "errors"

// ErrInvalidCategory is returned when a category is outside its closed set.
var ErrInvalidCategory = errors.New("variant: invalid category")
