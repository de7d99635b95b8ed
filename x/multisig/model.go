package multisig

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/orm"
)

const (
	// BucketName is where we store the transfer requests
	BucketName = "transfers"
	// SequenceName is an auto-increment ID counter for transfer requests
	SequenceName = "id"

	// To avoid burning CPU, this is the maximum number of approvers
	// allowed to guard a single pool.
	maxApproversAllowed = 100
)

// Configuration declares who guards the pool and how many of them must
// approve a transfer.
type Configuration struct {
	// Approvers is the ordered list of addresses allowed to request and
	// approve transfers.
	Approvers []custody.Address `protobuf:"bytes,1,rep,name=approvers,proto3,casttype=github.com/iov-one/custody.Address" json:"approvers"`
	// Quorum is the number of distinct approvals that releases a transfer.
	Quorum uint32 `protobuf:"varint,2,opt,name=quorum,proto3" json:"quorum"`
}

var _ orm.Model = (*Configuration)(nil)

func (c *Configuration) Reset()         { *c = Configuration{} }
func (c *Configuration) String() string { return proto.CompactTextString(c) }
func (*Configuration) ProtoMessage()    {}

// Validate ensures the approver set is not empty, has no duplicates and
// can reach the quorum.
func (c *Configuration) Validate() error {
	switch n := len(c.Approvers); {
	case n == 0:
		return errors.Wrap(ErrInvalidConfiguration, "no approvers")
	case n > maxApproversAllowed:
		return errors.Wrap(ErrInvalidConfiguration, "too many approvers")
	}
	for i, a := range c.Approvers {
		if err := a.Validate(); err != nil {
			return errors.Wrapf(ErrInvalidConfiguration, "approver %d: %s", i, err)
		}
		for _, prev := range c.Approvers[:i] {
			if prev.Equals(a) {
				return errors.Wrapf(ErrInvalidConfiguration, "duplicated approver %s", a)
			}
		}
	}
	if c.Quorum < 1 || int(c.Quorum) > len(c.Approvers) {
		return errors.Wrapf(ErrInvalidConfiguration,
			"quorum %d out of range [1, %d]", c.Quorum, len(c.Approvers))
	}
	return nil
}

// HasApprover returns true if the address belongs to the approver set.
func (c *Configuration) HasApprover(addr custody.Address) bool {
	for _, a := range c.Approvers {
		if a.Equals(addr) {
			return true
		}
	}
	return false
}

// Transfer is a request to release value from the pool. Once executed it
// never changes again.
type Transfer struct {
	ID            uint64            `protobuf:"varint,1,opt,name=id,proto3" json:"id"`
	Amount        uint64            `protobuf:"varint,2,opt,name=amount,proto3" json:"amount"`
	Destination   custody.Address   `protobuf:"bytes,3,opt,name=destination,proto3,casttype=github.com/iov-one/custody.Address" json:"destination"`
	ApprovalCount uint32            `protobuf:"varint,4,opt,name=approval_count,json=approvalCount,proto3" json:"approval_count"`
	ApprovedBy    []custody.Address `protobuf:"bytes,5,rep,name=approved_by,json=approvedBy,proto3,casttype=github.com/iov-one/custody.Address" json:"approved_by"`
	Executed      bool              `protobuf:"varint,6,opt,name=executed,proto3" json:"executed"`
}

var _ orm.Model = (*Transfer)(nil)

func (t *Transfer) Reset()         { *t = Transfer{} }
func (t *Transfer) String() string { return proto.CompactTextString(t) }
func (*Transfer) ProtoMessage()    {}

// Validate ensures the approval state is consistent.
func (t *Transfer) Validate() error {
	var errs error
	if t.Amount == 0 {
		errs = errors.AppendField(errs, "Amount", errors.ErrAmount)
	}
	errs = errors.AppendField(errs, "Destination", t.Destination.Validate())
	if int(t.ApprovalCount) != len(t.ApprovedBy) {
		errs = errors.AppendField(errs, "ApprovalCount",
			errors.Wrapf(errors.ErrState, "%d approvals recorded by %d approvers", t.ApprovalCount, len(t.ApprovedBy)))
	}
	if t.Executed && t.ApprovalCount == 0 {
		errs = errors.AppendField(errs, "Executed",
			errors.Wrap(errors.ErrState, "executed without approvals"))
	}
	return errs
}

// HasApproved returns true if the address already approved this transfer.
func (t *Transfer) HasApproved(addr custody.Address) bool {
	for _, a := range t.ApprovedBy {
		if a.Equals(addr) {
			return true
		}
	}
	return false
}

// NewTransferBucket returns a bucket of transfer requests keyed by the
// encoded sequence ID, so that iteration yields them in creation order.
func NewTransferBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &Transfer{})
}

// PoolCondition owns the funds of the pool in the store of an engine.
var PoolCondition = custody.NewCondition("multisig", "pool", []byte("custody"))
