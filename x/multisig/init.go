package multisig

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/gconf"
)

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct {
	// Bank is used to fund the pool. It is required only when the genesis
	// declares a deposit.
	Bank Bank
}

var _ custody.Initializer = (*Initializer)(nil)

// FromGenesis stores the engine configuration found under
// opts["conf"]["multisig"] and funds the pool with opts["multisig"].deposit.
func (i *Initializer) FromGenesis(opts custody.Options, kv custody.KVStore) error {
	var conf Configuration
	if err := gconf.InitConfig(kv, opts, confKey, &conf); err != nil {
		return errors.Wrap(err, "init config")
	}

	var genesis struct {
		Deposit uint64 `json:"deposit"`
	}
	if err := opts.ReadOptions("multisig", &genesis); err != nil {
		return err
	}
	if genesis.Deposit == 0 {
		return nil
	}
	if i.Bank == nil {
		return errors.Wrap(errors.ErrHuman, "bank required to deposit")
	}
	if err := i.Bank.IssueCoins(kv, PoolCondition.Address(), genesis.Deposit); err != nil {
		return errors.Wrap(err, "pool deposit")
	}
	return nil
}
