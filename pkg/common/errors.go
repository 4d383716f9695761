package common

import "errors"

// AsError is the generic variant of errors.As.
func AsError[T error](err error) (T, bool) {
	var target T
	ok := errors.As(err, &target)
	return target, ok
}
