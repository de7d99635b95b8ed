package multisig

import (
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/custodytest"
	"github.com/iov-one/custody/custodytest/assert"
	"github.com/iov-one/custody/errors"
)

func TestTransferValidate(t *testing.T) {
	a := custodytest.NewAddress()
	dest := custodytest.NewAddress()

	cases := map[string]struct {
		model *Transfer
		want  map[string]*errors.Error
	}{
		"pending transfer": {
			model: &Transfer{ID: 3, Amount: 10, Destination: dest},
			want: map[string]*errors.Error{
				"Amount":        nil,
				"Destination":   nil,
				"ApprovalCount": nil,
				"Executed":      nil,
			},
		},
		"executed transfer": {
			model: &Transfer{
				Amount:        10,
				Destination:   dest,
				ApprovalCount: 1,
				ApprovedBy:    []custody.Address{a},
				Executed:      true,
			},
			want: map[string]*errors.Error{
				"ApprovalCount": nil,
				"Executed":      nil,
			},
		},
		"count does not match approvers": {
			model: &Transfer{Amount: 10, Destination: dest, ApprovalCount: 2, ApprovedBy: []custody.Address{a}},
			want: map[string]*errors.Error{
				"ApprovalCount": errors.ErrState,
			},
		},
		"executed without approvals": {
			model: &Transfer{Amount: 10, Destination: dest, Executed: true},
			want: map[string]*errors.Error{
				"Executed": errors.ErrState,
			},
		},
		"missing amount and destination": {
			model: &Transfer{},
			want: map[string]*errors.Error{
				"Amount":      errors.ErrAmount,
				"Destination": errors.ErrEmpty,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.model.Validate()
			for field, want := range tc.want {
				assert.FieldError(t, err, field, want)
			}
		})
	}
}
