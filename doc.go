/*
Package custody defines the interfaces shared by every part of the custody
engine: identities (conditions and addresses), key value storage,
messages, handlers and decorators, genesis options and context helpers.

Extensions live under x/. The multi-approver engine itself is x/multisig,
the settlement ledger it releases value through is x/cash.

We pass context through context.Context between the boundary layer,
middleware and handlers. There should exist two functions for every XYZ of
type T that we want to support in Context:

  WithXYZ(Context, T) Context
  GetXYZ(Context) (val T, ok bool)
*/
package custody
