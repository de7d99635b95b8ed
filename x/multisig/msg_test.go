package multisig

import (
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/custodytest"
	"github.com/iov-one/custody/custodytest/assert"
	"github.com/iov-one/custody/errors"
)

func TestCreateTransferMsgValidate(t *testing.T) {
	cases := map[string]struct {
		msg  custody.Msg
		want map[string]*errors.Error
	}{
		"valid message": {
			msg: &CreateTransferMsg{Amount: 1, Destination: custodytest.NewAddress()},
			want: map[string]*errors.Error{
				"Amount":      nil,
				"Destination": nil,
			},
		},
		"zero amount": {
			msg: &CreateTransferMsg{Destination: custodytest.NewAddress()},
			want: map[string]*errors.Error{
				"Amount":      errors.ErrAmount,
				"Destination": nil,
			},
		},
		"missing destination": {
			msg: &CreateTransferMsg{Amount: 10},
			want: map[string]*errors.Error{
				"Amount":      nil,
				"Destination": errors.ErrEmpty,
			},
		},
		"nothing is valid": {
			msg: &CreateTransferMsg{Destination: custody.Address{0x01, 0x02}},
			want: map[string]*errors.Error{
				"Amount":      errors.ErrAmount,
				"Destination": errors.ErrInput,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			for field, want := range tc.want {
				assert.FieldError(t, err, field, want)
			}
		})
	}
}

func TestMsgPaths(t *testing.T) {
	assert.Equal(t, "multisig/create_transfer", (&CreateTransferMsg{}).Path())
	assert.Equal(t, "multisig/approve_transfer", (&ApproveTransferMsg{}).Path())
	assert.Nil(t, (&ApproveTransferMsg{TransferID: 7}).Validate())
}
