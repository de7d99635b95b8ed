package x

import (
	"context"

	"github.com/iov-one/custody"
)

type contextKey int // local to the x module

const (
	contextKeySigners contextKey = iota
)

// WithSigners returns a context carrying the conditions of the caller. The
// hosting environment calls it once it established who sent the request.
// Conditions already present in the context are replaced.
func WithSigners(ctx custody.Context, signers ...custody.Condition) custody.Context {
	return context.WithValue(ctx, contextKeySigners, signers)
}

// SignerAuth authenticates the conditions set with WithSigners.
type SignerAuth struct{}

var _ Authenticator = SignerAuth{}

// GetConditions returns who signed the current Context.
// May be empty
func (SignerAuth) GetConditions(ctx custody.Context) []custody.Condition {
	// (val, ok) form to return nil instead of panic if unset
	val, _ := ctx.Value(contextKeySigners).([]custody.Condition)
	return val
}

// HasAddress returns true if any of the signers matches the address.
func (a SignerAuth) HasAddress(ctx custody.Context, addr custody.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
