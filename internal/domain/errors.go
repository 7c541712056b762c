package domain

import "errors"

// ErrNotFound is returned by store and service functions when the requested
// ride does not exist. Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. negative distance). Handlers should map this to
// HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrInvalidDuration is returned by ParseDuration when the text matches none
// of the accepted duration grammars. Recoverable: interactive callers should
// prompt for re-entry.
var ErrInvalidDuration = errors.New("invalid duration format")

// ErrMalformedRecord is returned by the codec when a single line of the
// store cannot be decoded: wrong field count, bad timestamp, or a distance
// or duration that does not parse as a number.
var ErrMalformedRecord = errors.New("malformed record")

// ErrCorruptStore is returned by Store.Load when any line of the file is
// malformed. The load fails entirely; partial statistics over a garbled
// store are worse than refusing to proceed.
var ErrCorruptStore = errors.New("corrupt store")

// ErrIO wraps file system failures on read, append, or rewrite. Surfaced to
// the caller without retry.
var ErrIO = errors.New("i/o failure")

// ErrEmptySet is returned by statistics functions when asked to summarize
// zero rides. It is a distinguishable "no data for this scope" result, not
// a crash and not a set of zero means.
var ErrEmptySet = errors.New("no rides in set")

// ErrNoURL is returned by ViewURL when the ride exists but has an empty URL.
var ErrNoURL = errors.New("ride has no URL")
