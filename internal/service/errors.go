package service

import (
	"errors"
	"fmt"
)

// ErrNothingToImport is returned when an import contains no usable rows.
var ErrNothingToImport = errors.New("nothing to import")

// ServiceError adds the failing service and operation to an unexpected
// error. Expected conditions are returned as sentinels instead.
type ServiceError struct {
	Service   string
	Operation string
	Err       error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s service %s failed: %v", e.Service, e.Operation, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

func newServiceError(service, operation string, err error) error {
	return &ServiceError{Service: service, Operation: operation, Err: err}
}
