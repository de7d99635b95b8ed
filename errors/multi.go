package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If given error implements unpacker interface, it is flattened. All
// collected errors are kept in order.
func Append(errs ...error) error {
	var res multiErr
	for _, e := range errs {
		if isNilErr(e) {
			continue
		}
		if u, ok := e.(unpacker); ok {
			res = append(res, u.Unpack()...)
		} else {
			res = append(res, e)
		}
	}

	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return res
	}
}

// unpacker is implemented by errors that are a group of errors.
type unpacker interface {
	Unpack() []error
}

// multiErr represents a group of errors that were collected together.
type multiErr []error

var _ unpacker = (multiErr)(nil)

// Unpack returns all errors that this instance is a container for.
func (errs multiErr) Unpack() []error {
	return errs
}

// ABCICode returns the code of the first error that provides one. This is
// consistent with the fail-fast approach of a single error.
func (errs multiErr) ABCICode() uint32 {
	for _, e := range errs {
		if code := abciCode(e); code != internalABCICode {
			return code
		}
	}
	return internalABCICode
}

func (errs multiErr) Error() string {
	if len(errs) == 1 {
		return errs[0].Error()
	}

	points := make([]string, len(errs))
	for i, err := range errs {
		points[i] = fmt.Sprintf("* %s", err)
	}
	return fmt.Sprintf("%d errors occurred:\n\t%s\n", len(errs), strings.Join(points, "\n\t"))
}
