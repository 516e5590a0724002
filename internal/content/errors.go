package content

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed load for diagnostics. A resource that does
// not exist is not an error at all; it loads as absent.
type ErrorKind string

const (
	KindTransport ErrorKind = "transport"
	KindParse     ErrorKind = "parse"
)

// FetchError records why a content path could not be loaded.
type FetchError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s error loading %s: %v", e.Kind, e.Path, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func IsTransport(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Kind == KindTransport
}

func IsParse(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Kind == KindParse
}
