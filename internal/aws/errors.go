package aws

import (
	"errors"
	"fmt"

	"github.com/grimm26/awsdesc/pkg/resource"
)

// ErrUnsupportedResource marks a (kind, sub_type) combination the
// describer has no dispatch entry for.
var ErrUnsupportedResource = errors.New("unsupported resource type")

// ErrNotFound marks a describe call that returned an empty result set.
var ErrNotFound = errors.New("resource not found")

// CredentialError reports a failed credential pre-flight.
type CredentialError struct {
	Err error
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("aws credentials check failed: %v", e.Err)
}

func (e *CredentialError) Unwrap() error {
	return e.Err
}

// DescribeError wraps any failure while describing a classified resource,
// including not-found, access-denied and throttling from the AWS APIs.
type DescribeError struct {
	Desc resource.Descriptor
	Err  error
}

func (e *DescribeError) Error() string {
	return fmt.Sprintf("describe %s %s %q: %v", e.Desc.Kind, e.Desc.Sub, e.Desc.DisplayName(), e.Err)
}

func (e *DescribeError) Unwrap() error {
	return e.Err
}

func describeErr(d resource.Descriptor, err error) error {
	return &DescribeError{Desc: d, Err: err}
}
