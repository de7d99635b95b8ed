package custody_test

import (
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/custodytest"
	"github.com/iov-one/custody/custodytest/assert"
	"github.com/iov-one/custody/errors"
)

type greetMsg struct {
	Name string
}

func (greetMsg) Path() string { return "greet" }

func (m *greetMsg) Validate() error {
	if m.Name == "" {
		return errors.Wrap(errors.ErrEmpty, "name")
	}
	return nil
}

func TestLoadMsg(t *testing.T) {
	cases := map[string]struct {
		tx      custody.Tx
		wantErr *errors.Error
		want    greetMsg
	}{
		"valid message": {
			tx:   &custodytest.Tx{Msg: &greetMsg{Name: "alice"}},
			want: greetMsg{Name: "alice"},
		},
		"invalid message": {
			tx:      &custodytest.Tx{Msg: &greetMsg{}},
			wantErr: errors.ErrEmpty,
		},
		"message of a different type": {
			tx:      &custodytest.Tx{Msg: &custodytest.Msg{RoutePath: "greet"}},
			wantErr: errors.ErrType,
		},
		"missing message": {
			tx:      &custodytest.Tx{},
			wantErr: errors.ErrInput,
		},
		"transaction error": {
			tx:      &custodytest.Tx{Err: errors.ErrState},
			wantErr: errors.ErrState,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var msg greetMsg
			err := custody.LoadMsg(tc.tx, &msg)
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.want, msg)
		})
	}
}

func TestReadOptions(t *testing.T) {
	opts := custody.Options{
		"count": []byte(`7`),
		"bad":   []byte(`"seven"`),
	}

	var n int
	assert.Nil(t, opts.ReadOptions("count", &n))
	assert.Equal(t, 7, n)

	// missing keys are ignored
	assert.Nil(t, opts.ReadOptions("missing", &n))
	assert.Equal(t, 7, n)

	assert.IsErr(t, errors.ErrInput, opts.ReadOptions("bad", &n))
}
