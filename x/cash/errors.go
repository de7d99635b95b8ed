package cash

import "github.com/iov-one/custody/errors"

// ErrInsufficientFunds is returned when a wallet does not hold enough value
// to cover a move.
var ErrInsufficientFunds = errors.Register(1020, "insufficient funds")
