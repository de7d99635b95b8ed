package orm

import (
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/custody/custodytest/assert"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/store"
)

type counter struct {
	Count int64  `protobuf:"varint,1,opt,name=count,proto3" json:"count,omitempty"`
	Label string `protobuf:"bytes,2,opt,name=label,proto3" json:"label,omitempty"`
}

func (c *counter) Reset()         { *c = counter{} }
func (c *counter) String() string { return proto.CompactTextString(c) }
func (*counter) ProtoMessage()    {}

func (c *counter) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrModel, "negative count")
	}
	return nil
}

type other struct {
	counter
}

func TestModelBucketPutOne(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("counters", &counter{})

	assert.Nil(t, b.Put(db, []byte("a"), &counter{Count: 7, Label: "seven"}))

	var got counter
	assert.Nil(t, b.One(db, []byte("a"), &got))
	assert.Equal(t, counter{Count: 7, Label: "seven"}, got)

	assert.Nil(t, b.Has(db, []byte("a")))
	assert.IsErr(t, errors.ErrNotFound, b.Has(db, []byte("b")))
	assert.IsErr(t, errors.ErrNotFound, b.One(db, []byte("b"), &got))
}

func TestModelBucketRejects(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("counters", &counter{})

	assert.IsErr(t, errors.ErrModel, b.Put(db, []byte("a"), &counter{Count: -1}))
	assert.IsErr(t, errors.ErrEmpty, b.Put(db, nil, &counter{Count: 1}))
	assert.IsErr(t, errors.ErrType, b.Put(db, []byte("a"), &other{}))

	assert.Nil(t, b.Put(db, []byte("a"), &counter{Count: 1}))
	assert.IsErr(t, errors.ErrType, b.One(db, []byte("a"), &other{}))
}

func TestModelBucketAll(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("counters", &counter{})
	// Another bucket sharing the store must not leak into the result.
	o := NewModelBucket("countert", &counter{})

	for i := int64(3); i > 0; i-- {
		assert.Nil(t, b.Put(db, EncodeSequence(uint64(i)), &counter{Count: i}))
	}
	assert.Nil(t, o.Put(db, EncodeSequence(1), &counter{Count: 100}))

	var all []*counter
	keys, err := b.All(db, &all)
	assert.Nil(t, err)
	assert.Equal(t, 3, len(all))
	for i, c := range all {
		assert.Equal(t, int64(i+1), c.Count)
		assert.Equal(t, EncodeSequence(uint64(i+1)), keys[i])
	}

	var wrong []*other
	_, err = b.All(db, &wrong)
	assert.IsErr(t, errors.ErrType, err)
}

func TestModelBucketDelete(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("counters", &counter{})

	assert.IsErr(t, errors.ErrNotFound, b.Delete(db, []byte("a")))
	assert.Nil(t, b.Put(db, []byte("a"), &counter{Count: 1}))
	assert.Nil(t, b.Delete(db, []byte("a")))
	assert.IsErr(t, errors.ErrNotFound, b.Has(db, []byte("a")))
}

func TestPrefixEnd(t *testing.T) {
	assert.Equal(t, []byte("ab"), prefixEnd([]byte("aa")))
	assert.Equal(t, []byte{0x02}, prefixEnd([]byte{0x01, 0xff}))
	assert.Nil(t, prefixEnd([]byte{0xff, 0xff}))
}
