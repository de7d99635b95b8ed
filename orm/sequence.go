package orm

import (
	"encoding/binary"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
)

// Sequence maintains a counter. Each value returned by NextInt is greater
// than the last, and so is its EncodeSequence key under bytes.Compare.
type Sequence struct {
	id []byte
}

// NewSequence returns a sequence counter. Sequence is using following pattern
// to construct a key:
//    _s.<bucket>:<name>
func NewSequence(bucket, name string) Sequence {
	id := "_s." + bucket + ":" + name
	return Sequence{
		id: []byte(id),
	}
}

// NextInt increments the sequence and returns its state as int.
func (s *Sequence) NextInt(db custody.KVStore) (uint64, error) {
	return s.increment(db, 1)
}

// Latest returns the recently returned value of the sequence. This method does
// not modify the sequence state. Use NextInt to acquire a sequence
// value that was not given to anyone else.
func (s *Sequence) Latest(db custody.ReadOnlyKVStore) (uint64, error) {
	raw, err := db.Get(s.id)
	if err != nil {
		return 0, errors.Wrap(err, "cannot load sequence")
	}
	return DecodeSequence(raw)
}

func (s *Sequence) increment(db custody.KVStore, inc uint64) (uint64, error) {
	val, err := s.Latest(db)
	if err != nil {
		return 0, err
	}
	val += inc
	if err := db.Set(s.id, EncodeSequence(val)); err != nil {
		return 0, errors.Wrap(err, "cannot save sequence")
	}
	return val, nil
}

// DecodeSequence returns the value of a sequence key. A nil key is the
// initial state of every sequence and decodes to zero.
func DecodeSequence(bz []byte) (uint64, error) {
	if bz == nil {
		return 0, nil
	}
	if len(bz) != 8 {
		return 0, errors.Wrapf(errors.ErrInput, "sequence must be 8 bytes, got %d", len(bz))
	}
	return binary.BigEndian.Uint64(bz), nil
}

// EncodeSequence returns the big endian representation of the value, so that
// the byte order of encoded values matches their numeric order.
func EncodeSequence(val uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, val)
	return bz
}
