package resource

import (
	"errors"
	"fmt"
)

// Sentinel causes for classification failures.
var (
	ErrMalformedARN   = errors.New("malformed ARN")
	ErrMalformedS3URL = errors.New("malformed s3 URL")
	ErrUnrecognized   = errors.New("unrecognized identifier")
)

// ClassificationError reports an identifier no classification rule could
// place. It wraps one of the sentinel causes above so callers can map the
// whole family to a single exit status.
type ClassificationError struct {
	Identifier string
	Err        error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("cannot determine what type of resource %q is: %v", e.Identifier, e.Err)
}

func (e *ClassificationError) Unwrap() error {
	return e.Err
}

func classifyErr(identifier string, cause error) error {
	return &ClassificationError{Identifier: identifier, Err: cause}
}
