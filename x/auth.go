package x

import (
	"github.com/iov-one/custody"
)

// Authenticator tells which identities signed the request carried by the
// context. Handlers receive it in their constructor and never read the
// caller from message fields.
type Authenticator interface {
	// GetConditions returns the signers in order, the main one first.
	GetConditions(custody.Context) []custody.Condition
	// HasAddress is true if any signer resolves to the address.
	HasAddress(custody.Context, custody.Address) bool
}

// MainSigner returns the first signer, or nil for an anonymous request.
func MainSigner(ctx custody.Context, auth Authenticator) custody.Condition {
	signers := auth.GetConditions(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}
