package custodytest

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/iov-one/custody"
)

var condCounter uint64

// NewCondition returns a condition that is unique within the test run.
func NewCondition() custody.Condition {
	n := atomic.AddUint64(&condCounter, 1)
	return custody.NewCondition("test", "seq", SequenceID(n))
}

// NewAddress returns the address of a freshly created condition.
func NewAddress() custody.Address {
	return NewCondition().Address()
}

// SequenceID returns an ID encoded as if it was generated by the orm
// sequence.
func SequenceID(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}
