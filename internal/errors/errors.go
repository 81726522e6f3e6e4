package errors

import "errors"

var ErrNotFound = errors.New("record not found")
var ErrOwnedShows = errors.New("record still owns shows")
