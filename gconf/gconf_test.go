package gconf

import (
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/custodytest/assert"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/store"
)

type limits struct {
	Max uint64 `protobuf:"varint,1,opt,name=max,proto3" json:"max,omitempty"`
}

func (l *limits) Reset()         { *l = limits{} }
func (l *limits) String() string { return proto.CompactTextString(l) }
func (*limits) ProtoMessage()    {}

func (l *limits) Validate() error {
	if l.Max == 0 {
		return errors.Wrap(errors.ErrState, "max must be set")
	}
	return nil
}

func TestSaveLoad(t *testing.T) {
	db := store.MemStore()

	assert.IsErr(t, errors.ErrNotFound, Load(db, "limits", &limits{}))
	assert.IsErr(t, errors.ErrState, Save(db, "limits", &limits{}))
	assert.Nil(t, Save(db, "limits", &limits{Max: 42}))

	var got limits
	assert.Nil(t, Load(db, "limits", &got))
	assert.Equal(t, uint64(42), got.Max)
}

func TestInitConfig(t *testing.T) {
	cases := map[string]struct {
		opts    custody.Options
		wantErr *errors.Error
		wantMax uint64
	}{
		"valid configuration": {
			opts:    custody.Options{"conf": []byte(`{"limits": {"max": 7}}`)},
			wantMax: 7,
		},
		"missing package": {
			opts:    custody.Options{"conf": []byte(`{"other": {}}`)},
			wantErr: errors.ErrNotFound,
		},
		"missing conf section": {
			opts:    custody.Options{},
			wantErr: errors.ErrNotFound,
		},
		"invalid configuration": {
			opts:    custody.Options{"conf": []byte(`{"limits": {"max": 0}}`)},
			wantErr: errors.ErrState,
		},
		"malformed json": {
			opts:    custody.Options{"conf": []byte(`{"limits": {"max": "x"}}`)},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			err := InitConfig(db, tc.opts, "limits", &limits{})
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
				return
			}
			assert.Nil(t, err)

			var got limits
			assert.Nil(t, Load(db, "limits", &got))
			assert.Equal(t, tc.wantMax, got.Max)
		})
	}
}
