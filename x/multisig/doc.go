/*
Package multisig implements a custody pool guarded by a fixed set of
approvers.

Any approver may request a transfer of value out of the pool. A request
is executed, and the value released to its destination, once a quorum
of distinct approvers approved it. The approver set and the quorum are
configured once and never change for the lifetime of an Engine.

The Engine serializes every state change. An approval that reaches the
quorum and the release of funds it triggers are committed together or
not at all: when the pool cannot cover the transfer the approval is
rejected and the request stays as it was.

Handlers exposing the engine to a Router resolve the caller identity
using an x.Authenticator, so the identity is never taken from the
message content.
*/
package multisig
