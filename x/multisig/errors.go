package multisig

import (
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/x/cash"
)

// multisig takes 1030-1034
var (
	ErrInvalidConfiguration = errors.Register(1030, "invalid configuration")
	ErrNotApprover          = errors.Register(1031, "not an approver")
	ErrUnknownTransfer      = errors.Register(1032, "unknown transfer")
	ErrAlreadyExecuted      = errors.Register(1033, "transfer already executed")
	ErrDuplicateApproval    = errors.Register(1034, "duplicate approval")
)

// ErrInsufficientFunds is returned by an approval that reached the quorum
// when the pool cannot cover the transfer amount. It is raised by the
// settlement ledger and returned unchanged.
var ErrInsufficientFunds = cash.ErrInsufficientFunds
