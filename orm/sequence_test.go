package orm

import (
	"bytes"
	"testing"

	"github.com/iov-one/custody/store"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSequence(t *testing.T) {
	Convey("Given an empty store", t, func() {
		db := store.MemStore()
		seq := NewSequence("transfers", "id")

		Convey("Latest of a fresh sequence is zero", func() {
			val, err := seq.Latest(db)
			So(err, ShouldBeNil)
			So(val, ShouldEqual, uint64(0))
		})

		Convey("NextInt counts from one", func() {
			for want := uint64(1); want <= 3; want++ {
				val, err := seq.NextInt(db)
				So(err, ShouldBeNil)
				So(val, ShouldEqual, want)
			}
			latest, err := seq.Latest(db)
			So(err, ShouldBeNil)
			So(latest, ShouldEqual, uint64(3))
		})

		Convey("Encoded values sort in creation order", func() {
			a, err := seq.NextInt(db)
			So(err, ShouldBeNil)
			b, err := seq.NextInt(db)
			So(err, ShouldBeNil)
			So(bytes.Compare(EncodeSequence(a), EncodeSequence(b)), ShouldBeLessThan, 0)
		})

		Convey("Sequences with different names are independent", func() {
			other := NewSequence("transfers", "other")
			_, err := seq.NextInt(db)
			So(err, ShouldBeNil)
			val, err := other.Latest(db)
			So(err, ShouldBeNil)
			So(val, ShouldEqual, uint64(0))
		})

		Convey("A sequence written by a discarded cache is not advanced", func() {
			cache := db.CacheWrap()
			_, err := seq.NextInt(cache)
			So(err, ShouldBeNil)
			cache.Discard()

			val, err := seq.Latest(db)
			So(err, ShouldBeNil)
			So(val, ShouldEqual, uint64(0))
		})
	})
}

func TestDecodeSequence(t *testing.T) {
	Convey("Encoding round trips", t, func() {
		val, err := DecodeSequence(EncodeSequence(1234))
		So(err, ShouldBeNil)
		So(val, ShouldEqual, uint64(1234))
	})
	Convey("Malformed values are rejected", t, func() {
		_, err := DecodeSequence([]byte{1, 2})
		So(err, ShouldNotBeNil)
	})
}
