/*
Package cash is the settlement ledger the custody engine releases funds
through.

Every address owns a wallet holding a single non-negative amount. Value
is only ever moved between wallets or issued into one; the balance of a
wallet may never go below zero and a move either completes fully or
leaves both wallets untouched.
*/
package cash
