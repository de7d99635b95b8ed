package custody

import (
	"reflect"

	"github.com/iov-one/custody/errors"
)

// assignMsg sets the value of src into dst. Both must be pointers to the
// same message type.
func assignMsg(src Msg, dst interface{}) error {
	dstVal := reflect.ValueOf(dst)
	if dstVal.Kind() != reflect.Ptr || dstVal.IsNil() {
		return errors.Wrap(errors.ErrHuman, "destination must be a non nil pointer")
	}
	srcVal := reflect.ValueOf(src)
	if srcVal.Kind() == reflect.Ptr {
		srcVal = srcVal.Elem()
	}
	if !srcVal.Type().AssignableTo(dstVal.Elem().Type()) {
		return errors.Wrapf(errors.ErrType, "cannot load %T into %T", src, dst)
	}
	dstVal.Elem().Set(srcVal)
	return nil
}
