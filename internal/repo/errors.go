package repo

import "errors"

// ErrItemNotFound is returned when an item is not found in the repository.
var ErrItemNotFound = errors.New("item not found")
