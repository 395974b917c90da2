package emergency

import "errors"

// ErrLocationNotFound is returned when every provider and query format has
// been tried without a usable match. The message is shown to the user as-is.
var ErrLocationNotFound = errors.New("could not find that location, try adding more detail: area, city")
