package errors

import "fmt"

// Errorf is a shortcut to fmt.Errorf, so callers need a single errors import
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
