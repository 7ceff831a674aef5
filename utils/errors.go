package utils

import "fmt"

// WrapExistsError returns a wrapped exists error
func WrapExistsError(err error) error {
	return fmt.Errorf("exists error: %w", err)
}

// WrapCreateError returns a wrapped create error
func WrapCreateError(err error) error {
	return fmt.Errorf("create error: %w", err)
}

// WrapDeleteError returns a wrapped delete error
func WrapDeleteError(err error) error {
	return fmt.Errorf("delete error: %w", err)
}

// WrapKeyError returns a wrapped key retrieval error
func WrapKeyError(err error) error {
	return fmt.Errorf("key error: %w", err)
}

// WrapListError returns a wrapped list error
func WrapListError(err error) error {
	return fmt.Errorf("list error: %w", err)
}

// WrapStatError returns a wrapped stat error
func WrapStatError(err error) error {
	return fmt.Errorf("stat error: %w", err)
}

// WrapPushError returns a wrapped push error
func WrapPushError(err error) error {
	return fmt.Errorf("push error: %w", err)
}
