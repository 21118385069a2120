// Package libbuildpack holds the error taxonomy shared by the buildpack helper packages.
package libbuildpack

import "errors"

type ErrorType string

const (
	ErrTypePathEncoding       ErrorType = "ERR_PATH_ENCODING"
	ErrTypeIO                 ErrorType = "ERR_IO"
	ErrTypeFileNotFound       ErrorType = "ERR_FILE_NOT_FOUND"
	ErrTypeSerialization      ErrorType = "ERR_SERIALIZATION"
	ErrTypeDeserialization    ErrorType = "ERR_DESERIALIZATION"
	ErrTypeEnvVarMissing      ErrorType = "ERR_ENV_VAR_MISSING"
	ErrTypeEnvVarNotUnicode   ErrorType = "ERR_ENV_VAR_NOT_UNICODE"
	ErrTypeNoProcessArguments ErrorType = "ERR_NO_PROCESS_ARGUMENTS"
)

// Error carries one or more underlying errors of a single type.
// When several independent operations fail, the first failure is the cause.
type Error struct {
	Errors []error
	Type   ErrorType
}

func (e *Error) Error() string {
	if e.Cause() != nil {
		return e.Cause().Error()
	}
	return string(e.Type)
}

func (e *Error) Cause() error {
	switch len(e.Errors) {
	case 0:
		return nil
	default:
		return e.Errors[0]
	}
}

func (e *Error) Unwrap() []error {
	return e.Errors
}

func NewError(cause error, errType ErrorType) *Error {
	return &Error{Errors: []error{cause}, Type: errType}
}

// Combine returns nil if every error is nil, otherwise an Error holding the non-nil
// errors in order. Nested errors of the same type are flattened.
func Combine(errType ErrorType, errs ...error) error {
	var out []error
	for _, err := range errs {
		if err == nil {
			continue
		}
		var le *Error
		if errors.As(err, &le) && le.Type == errType {
			out = append(out, le.Errors...)
			continue
		}
		out = append(out, err)
	}
	if len(out) == 0 {
		return nil
	}
	return &Error{Errors: out, Type: errType}
}

// IsType reports whether err, or any error it wraps, is an Error of the given type.
func IsType(err error, errType ErrorType) bool {
	var le *Error
	if !errors.As(err, &le) {
		return false
	}
	if le.Type == errType {
		return true
	}
	for _, inner := range le.Errors {
		if IsType(inner, errType) {
			return true
		}
	}
	return false
}
