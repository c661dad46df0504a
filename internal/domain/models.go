package domain

// Target is a single URL to be checked. It is passed to the prober exactly
// as supplied; malformed URLs surface as probe failures, not input errors.
type Target string
