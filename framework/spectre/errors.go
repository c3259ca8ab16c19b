package spectre

import "fmt"

// AssertionError is the distinguished failure kind raised by assertion
// helpers. The execution wrapper coerces it to a plain failed result instead
// of an erratic one, which is what separates "flunked" from "blew up".
type AssertionError struct {
	Message string
}

func (e *AssertionError) Error() string { return e.Message }

// Flunk raises an assertion failure with a formatted message. It never
// returns.
func Flunk(format string, args ...interface{}) {
	panic(&AssertionError{Message: fmt.Sprintf(format, args...)})
}

// skipSignal is the non-local control transfer used by T.Skip. It is only
// ever observed by the execution wrapper.
type skipSignal struct {
	reason string
}

func toError(recovered interface{}) error {
	if err, ok := recovered.(error); ok {
		return err
	}
	return fmt.Errorf("unexpected panic in test: %+v", recovered)
}
