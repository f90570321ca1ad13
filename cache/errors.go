package cache

import "errors"

// ErrCacheDisabled indicates a Fill/Probe was attempted against a
// Cache whose main array is disabled (b==0) and whose fallback slot
// could not serve the request either.
var ErrCacheDisabled = errors.New("cache: main cache disabled and fallback unavailable")

// ErrCornerOutOfRange indicates Entry.Get was asked for a corner index
// outside [0, len(Pointers)) or one that was never filled.
var ErrCornerOutOfRange = errors.New("cache: corner index out of range")
