package services

import "errors"

// ErrorClass groups business failures so handlers can map them to HTTP
// statuses without string matching. Anything unclassified is treated as an
// infrastructure failure and is safe to retry.
type ErrorClass int

const (
	ClassInfrastructure ErrorClass = iota
	ClassValidation
	ClassNotFound
	ClassStateConflict
	ClassEligibility
)

type Error struct {
	Class   ErrorClass
	Message string
}

func (e *Error) Error() string { return e.Message }

func validationError(msg string) error    { return &Error{Class: ClassValidation, Message: msg} }
func notFoundError(msg string) error      { return &Error{Class: ClassNotFound, Message: msg} }
func stateConflictError(msg string) error { return &Error{Class: ClassStateConflict, Message: msg} }
func eligibilityError(msg string) error   { return &Error{Class: ClassEligibility, Message: msg} }

// ClassOf returns the class of a service error, or ClassInfrastructure for
// raw store errors that bubbled up unclassified.
func ClassOf(err error) ErrorClass {
	var se *Error
	if errors.As(err, &se) {
		return se.Class
	}
	return ClassInfrastructure
}
