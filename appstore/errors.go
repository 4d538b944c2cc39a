package appstore

import "fmt"

// StoreError is the one error kind this package returns: bad input, an
// unresolvable country code, a connection failure, an unparseable response,
// or an id with no results all surface as a StoreError with a message.
type StoreError struct {
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeErrorf(format string, args ...any) *StoreError {
	return &StoreError{Message: fmt.Sprintf(format, args...)}
}

func wrapStoreError(err error, format string, args ...any) *StoreError {
	return &StoreError{Message: fmt.Sprintf(format, args...), Err: err}
}
