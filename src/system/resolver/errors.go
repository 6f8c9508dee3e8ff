package resolver

import "errors"

// All resolver failures are construction-time failures: they surface while
// the program wires up its instances, never during dispatch.
var (
	ErrUnknownStructure  = errors.New("unknown structure")
	ErrUnknownMCD        = errors.New("unknown minimal complete definition")
	ErrUnknownOperation  = errors.New("operation not part of structure contract")
	ErrNoInstance        = errors.New("no instance")
	ErrAmbiguousInstance = errors.New("ambiguous instance")
	ErrMalformedMCD      = errors.New("malformed minimal complete definition")
	ErrOperationType     = errors.New("operation body has unexpected type")
	ErrDuplicateInstance = errors.New("duplicate instance name")
)
