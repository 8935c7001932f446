package lti

import "errors"

var (
	// ErrMissingURL is returned when a request is signed without a resource URL.
	ErrMissingURL = errors.New("lti: resource url required for signing")

	// ErrUnsupportedSignatureMethod is returned when oauth_signature_method
	// names an algorithm this package does not implement.
	ErrUnsupportedSignatureMethod = errors.New("lti: unsupported signature method")

	// ErrEmptyForm is returned when a form request is built with no parameters.
	ErrEmptyForm = errors.New("lti: no form parameters provided")
)
