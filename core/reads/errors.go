package reads

import "errors"

// Error kinds returned by processor construction and queries. Call sites
// wrap them with the offending key; test with errors.Is.
var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrInvalidRead   = errors.New("invalid read")
	ErrUnknownKey    = errors.New("unknown key")
	ErrEmptyTable    = errors.New("empty k-mer table")
	ErrEmptyGraph    = errors.New("empty overlap graph")
	ErrEmptyAssembly = errors.New("empty assembly")
)
