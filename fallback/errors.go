package fallback

import (
	"errors"
	"fmt"
)

// Errors a [ConstructionError] may match with errors.Is.
var (
	ErrEmptyChain        = errors.New("chain has no families")
	ErrEmptyCoverage     = errors.New("family covers no code-points")
	ErrMalformedCoverage = errors.New("malformed coverage data")
	ErrCoverageLookup    = errors.New("coverage lookup failed")
)

// ConstructionError is returned by [Build] if a chain cannot be constructed
// from its input. It is not recoverable: the family list or the coverage data
// has to be corrected.
type ConstructionError struct {
	Chain  string // name of the chain under construction
	Family string // family in error; empty for errors concerning the whole chain
	Issue  string // human-readable description of the issue
	Err    error  // one of the Err... sentinels of this package
	Cause  error  // error reported by the coverage lookup, if any
}

// Error implements the error interface.
func (e *ConstructionError) Error() string {
	msg := fmt.Sprintf("fallback chain %q", e.Chain)
	if e.Family != "" {
		msg += fmt.Sprintf(", family %q", e.Family)
	}
	msg += ": " + e.Issue
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap makes both the sentinel and the cause visible to errors.Is and errors.As.
func (e *ConstructionError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

func errConstruction(chain, family string, sentinel error, issue string, cause error) error {
	return &ConstructionError{
		Chain:  chain,
		Family: family,
		Issue:  issue,
		Err:    sentinel,
		Cause:  cause,
	}
}
