package cash

import (
	"math"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/orm"
)

// Controller is the functionality needed by the custody engine to settle
// approved transfers.
type Controller struct {
	bucket orm.ModelBucket
}

// NewController returns a controller operating on the default wallet bucket.
func NewController() Controller {
	return Controller{bucket: NewBucket()}
}

// Balance returns the amount held by the given address. An address that
// never received anything holds zero.
func (c Controller) Balance(db custody.ReadOnlyKVStore, addr custody.Address) (uint64, error) {
	if err := addr.Validate(); err != nil {
		return 0, errors.Wrap(err, "address")
	}
	var w Wallet
	switch err := c.bucket.One(db, addr, &w); {
	case err == nil:
		return w.Amount, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, errors.Wrap(err, "cannot load wallet")
	}
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't have sufficient coins, it fails without changing
// either wallet.
func (c Controller) MoveCoins(db custody.KVStore, src, dest custody.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "zero value move")
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	have, err := c.Balance(db, src)
	if err != nil {
		return errors.Wrap(err, "source")
	}
	if have < amount {
		return errors.Wrapf(ErrInsufficientFunds, "have %d, need %d", have, amount)
	}
	if src.Equals(dest) {
		return nil
	}
	got, err := c.Balance(db, dest)
	if err != nil {
		return err
	}
	if got > math.MaxUint64-amount {
		return errors.Wrap(errors.ErrOverflow, "destination wallet")
	}

	if err := c.save(db, src, have-amount); err != nil {
		return err
	}
	return c.save(db, dest, got+amount)
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
func (c Controller) IssueCoins(db custody.KVStore, dest custody.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "zero value issue")
	}
	got, err := c.Balance(db, dest)
	if err != nil {
		return err
	}
	if got > math.MaxUint64-amount {
		return errors.Wrap(errors.ErrOverflow, "wallet")
	}
	return c.save(db, dest, got+amount)
}

// save stores the wallet state. Empty wallets are removed from the store.
func (c Controller) save(db custody.KVStore, addr custody.Address, amount uint64) error {
	if amount == 0 {
		err := c.bucket.Delete(db, addr)
		if err != nil && !errors.ErrNotFound.Is(err) {
			return errors.Wrap(err, "cannot delete wallet")
		}
		return nil
	}
	if err := c.bucket.Put(db, addr, &Wallet{Amount: amount}); err != nil {
		return errors.Wrap(err, "cannot save wallet")
	}
	return nil
}
