package notesclient

import "fmt"

// ApplicationError means the server answered and reported a failure.
type ApplicationError struct {
	Op      string
	Status  int
	Message string
}

func (e *ApplicationError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: server responded with status %d", e.Op, e.Status)
	}

	return fmt.Sprintf("%s: server responded with status %d: %s", e.Op, e.Status, e.Message)
}

// TransportError means no usable response was received: the request failed
// or the body could not be decoded.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
