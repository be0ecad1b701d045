package interfaces

import "errors"

// ErrNotFound is returned when a lookup matches no document, and by
// owner-scoped deletes and updates that match nothing (absent or not owned).
var ErrNotFound = errors.New("not found")
