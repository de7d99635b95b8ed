package multisig

import (
	"fmt"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/orm"
	"github.com/iov-one/custody/x"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r custody.Registry, auth x.Authenticator, engine *Engine) {
	r.Handle(pathCreateTransferMsg, NewCreateTransferHandler(auth, engine))
	r.Handle(pathApproveTransferMsg, NewApproveTransferHandler(auth, engine))
}

// CreateTransferHandler requests a new transfer on behalf of the main
// signer.
type CreateTransferHandler struct {
	auth   x.Authenticator
	engine *Engine
}

var _ custody.Handler = CreateTransferHandler{}

// NewCreateTransferHandler returns a handler for CreateTransferMsg.
func NewCreateTransferHandler(auth x.Authenticator, engine *Engine) CreateTransferHandler {
	return CreateTransferHandler{auth: auth, engine: engine}
}

func (h CreateTransferHandler) Check(ctx custody.Context, tx custody.Tx) (*custody.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &custody.CheckResult{}, nil
}

func (h CreateTransferHandler) Deliver(ctx custody.Context, tx custody.Tx) (*custody.DeliverResult, error) {
	caller, msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	id, err := h.engine.CreateTransfer(ctx, caller, msg.Amount, msg.Destination)
	if err != nil {
		return nil, err
	}
	return &custody.DeliverResult{
		Data: orm.EncodeSequence(id),
		Log:  fmt.Sprintf("transfer %d requested", id),
	}, nil
}

// validate does all common pre-processing between Check and Deliver
func (h CreateTransferHandler) validate(ctx custody.Context, tx custody.Tx) (custody.Address, *CreateTransferMsg, error) {
	caller, err := callerOf(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	if !h.engine.IsApprover(caller) {
		return nil, nil, errors.Wrapf(ErrNotApprover, "requester %s", caller)
	}
	var msg CreateTransferMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	return caller, &msg, nil
}

// ApproveTransferHandler approves a transfer on behalf of the main signer.
type ApproveTransferHandler struct {
	auth   x.Authenticator
	engine *Engine
}

var _ custody.Handler = ApproveTransferHandler{}

// NewApproveTransferHandler returns a handler for ApproveTransferMsg.
func NewApproveTransferHandler(auth x.Authenticator, engine *Engine) ApproveTransferHandler {
	return ApproveTransferHandler{auth: auth, engine: engine}
}

func (h ApproveTransferHandler) Check(ctx custody.Context, tx custody.Tx) (*custody.CheckResult, error) {
	caller, msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.engine.CheckApproval(ctx, msg.TransferID, caller); err != nil {
		return nil, err
	}
	return &custody.CheckResult{}, nil
}

func (h ApproveTransferHandler) Deliver(ctx custody.Context, tx custody.Tx) (*custody.DeliverResult, error) {
	caller, msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	t, err := h.engine.ApproveTransfer(ctx, msg.TransferID, caller)
	if err != nil {
		return nil, err
	}
	raw, err := proto.Marshal(t)
	if err != nil {
		return nil, errors.Wrap(errors.ErrModel, err.Error())
	}
	res := &custody.DeliverResult{
		Data: raw,
		Log:  fmt.Sprintf("transfer %d approved %d/%d", t.ID, t.ApprovalCount, h.engine.Quorum()),
	}
	if t.Executed {
		res.Log = fmt.Sprintf("transfer %d executed", t.ID)
	}
	return res, nil
}

// validate does all common pre-processing between Check and Deliver
func (h ApproveTransferHandler) validate(ctx custody.Context, tx custody.Tx) (custody.Address, *ApproveTransferMsg, error) {
	var msg ApproveTransferMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	caller, err := callerOf(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	return caller, &msg, nil
}

// callerOf returns the address of the main signer of the request.
func callerOf(ctx custody.Context, auth x.Authenticator) (custody.Address, error) {
	signer := x.MainSigner(ctx, auth)
	if signer == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	return signer.Address(), nil
}
