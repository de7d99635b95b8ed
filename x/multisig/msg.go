package multisig

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
)

const (
	pathCreateTransferMsg  = "multisig/create_transfer"
	pathApproveTransferMsg = "multisig/approve_transfer"
)

// CreateTransferMsg requests a transfer of value out of the pool. The
// requester is the caller of the message.
type CreateTransferMsg struct {
	Amount      uint64          `protobuf:"varint,1,opt,name=amount,proto3" json:"amount"`
	Destination custody.Address `protobuf:"bytes,2,opt,name=destination,proto3,casttype=github.com/iov-one/custody.Address" json:"destination"`
}

var _ custody.Msg = (*CreateTransferMsg)(nil)

func (m *CreateTransferMsg) Reset()         { *m = CreateTransferMsg{} }
func (m *CreateTransferMsg) String() string { return proto.CompactTextString(m) }
func (*CreateTransferMsg) ProtoMessage()    {}

// Path fulfills custody.Msg interface to allow routing
func (CreateTransferMsg) Path() string {
	return pathCreateTransferMsg
}

// Validate ensures a positive amount and a valid destination
func (m *CreateTransferMsg) Validate() error {
	var errs error
	if m.Amount == 0 {
		errs = errors.AppendField(errs, "Amount",
			errors.Wrap(errors.ErrAmount, "must be positive"))
	}
	errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	return errs
}

// ApproveTransferMsg approves a pending transfer on behalf of the caller.
type ApproveTransferMsg struct {
	TransferID uint64 `protobuf:"varint,1,opt,name=transfer_id,json=transferId,proto3" json:"transfer_id"`
}

var _ custody.Msg = (*ApproveTransferMsg)(nil)

func (m *ApproveTransferMsg) Reset()         { *m = ApproveTransferMsg{} }
func (m *ApproveTransferMsg) String() string { return proto.CompactTextString(m) }
func (*ApproveTransferMsg) ProtoMessage()    {}

// Path fulfills custody.Msg interface to allow routing
func (ApproveTransferMsg) Path() string {
	return pathApproveTransferMsg
}

// Validate is always successful. Whether the transfer exists is decided
// by the engine.
func (m *ApproveTransferMsg) Validate() error {
	return nil
}
