package vertex

import "errors"

// ErrInvalidConfiguration indicates that a four-edge Config does not match
// any of the six ice-rule-admissible vertex types (TypeOf is a partial
// function; callers must not silently coerce a non-matching configuration).
var ErrInvalidConfiguration = errors.New("vertex: configuration is not one of the six admissible types")
