package multisig

import (
	"sync"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/gconf"
	"github.com/iov-one/custody/orm"
)

// confKey is the gconf package name the engine configuration is stored
// under.
const confKey = "multisig"

// Bank is the settlement ledger the engine releases funds through. MoveCoins
// must either fully complete or leave the store untouched.
type Bank interface {
	Balance(db custody.ReadOnlyKVStore, addr custody.Address) (uint64, error)
	MoveCoins(db custody.KVStore, src, dest custody.Address, amount uint64) error
	IssueCoins(db custody.KVStore, dest custody.Address, amount uint64) error
}

// Engine owns a custody pool together with the ordered log of transfer
// requests drawing from it.
//
// All mutating operations are serialized. Queries may run concurrently
// with each other and always observe committed state only.
type Engine struct {
	mu sync.RWMutex

	db        custody.CacheableKVStore
	bank      Bank
	conf      Configuration
	pool      custody.Address
	transfers orm.ModelBucket
	seq       orm.Sequence
}

// NewEngine validates the configuration, stores it and returns an engine
// operating on the given store. The store must not be shared with another
// engine.
func NewEngine(ctx custody.Context, db custody.CacheableKVStore, bank Bank, conf Configuration) (*Engine, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	if err := gconf.Save(db, confKey, &conf); err != nil {
		return nil, errors.Wrap(err, "cannot save configuration")
	}
	e := newEngine(db, bank, conf)
	custody.GetLogger(ctx).Info("custody engine created",
		"approvers", len(conf.Approvers),
		"quorum", conf.Quorum,
		"pool", e.pool)
	return e, nil
}

// LoadEngine returns an engine for the store that was initialized before,
// for example from the genesis file. The configuration is read from the
// store.
func LoadEngine(ctx custody.Context, db custody.CacheableKVStore, bank Bank) (*Engine, error) {
	var conf Configuration
	if err := gconf.Load(db, confKey, &conf); err != nil {
		return nil, errors.Wrap(err, "cannot load configuration")
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return newEngine(db, bank, conf), nil
}

func newEngine(db custody.CacheableKVStore, bank Bank, conf Configuration) *Engine {
	approvers := make([]custody.Address, len(conf.Approvers))
	copy(approvers, conf.Approvers)
	conf.Approvers = approvers
	return &Engine{
		db:        db,
		bank:      bank,
		conf:      conf,
		pool:      PoolCondition.Address(),
		transfers: NewTransferBucket(),
		seq:       orm.NewSequence(BucketName, SequenceName),
	}
}

// CreateTransfer records a new pending request to release amount to the
// destination and returns its ID. The pool balance is not checked before
// the request is executed.
func (e *Engine) CreateTransfer(ctx custody.Context, requester custody.Address, amount uint64, destination custody.Address) (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.conf.HasApprover(requester) {
		return 0, errors.Wrapf(ErrNotApprover, "requester %s", requester)
	}
	if amount == 0 {
		return 0, errors.Wrap(errors.ErrAmount, "transfer amount must be positive")
	}
	if err := destination.Validate(); err != nil {
		return 0, errors.Wrap(err, "destination")
	}
	if destination.Equals(e.pool) {
		return 0, errors.Wrap(errors.ErrInput, "destination cannot be the pool")
	}

	cache := e.db.CacheWrap()
	n, err := e.seq.NextInt(cache)
	if err != nil {
		cache.Discard()
		return 0, errors.Wrap(err, "cannot acquire ID")
	}
	id := n - 1
	t := &Transfer{
		ID:          id,
		Amount:      amount,
		Destination: destination,
	}
	if err := e.transfers.Put(cache, orm.EncodeSequence(id), t); err != nil {
		cache.Discard()
		return 0, errors.Wrap(err, "cannot save transfer")
	}
	if err := cache.Write(); err != nil {
		return 0, errors.Wrap(err, "cannot commit transfer")
	}

	custody.GetLogger(ctx).Info("transfer requested",
		"id", id,
		"amount", amount,
		"destination", destination,
		"requester", requester)
	return id, nil
}

// ApproveTransfer records the approval of the given transfer. When the
// approval reaches the quorum the transfer amount is released to the
// destination. If the release fails the approval is not recorded.
//
// Returned is the state of the transfer after the approval.
func (e *Engine) ApproveTransfer(ctx custody.Context, id uint64, approver custody.Address) (*Transfer, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, err := e.pending(id, approver)
	if err != nil {
		return nil, err
	}

	t.ApprovedBy = append(t.ApprovedBy, approver)
	t.ApprovalCount++

	cache := e.db.CacheWrap()
	if t.ApprovalCount >= e.conf.Quorum {
		if err := e.bank.MoveCoins(cache, e.pool, t.Destination, t.Amount); err != nil {
			cache.Discard()
			custody.GetLogger(ctx).Error("transfer release failed",
				"id", id,
				"amount", t.Amount,
				"err", err)
			return nil, err
		}
		t.Executed = true
	}
	if err := e.transfers.Put(cache, orm.EncodeSequence(id), t); err != nil {
		cache.Discard()
		return nil, errors.Wrap(err, "cannot save transfer")
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "cannot commit approval")
	}

	logger := custody.GetLogger(ctx).With("id", id, "approver", approver)
	logger.Info("transfer approved", "approvals", t.ApprovalCount, "quorum", e.conf.Quorum)
	if t.Executed {
		logger.Info("transfer executed", "amount", t.Amount, "destination", t.Destination)
	}
	return t, nil
}

// CheckApproval returns the error ApproveTransfer would fail with before
// releasing any funds, or nil. It does not change the state.
func (e *Engine) CheckApproval(ctx custody.Context, id uint64, approver custody.Address) error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, err := e.pending(id, approver)
	return err
}

// pending loads the transfer and ensures the approver may approve it.
// Checks are done in a fixed order and the first failure is returned.
func (e *Engine) pending(id uint64, approver custody.Address) (*Transfer, error) {
	if !e.conf.HasApprover(approver) {
		return nil, errors.Wrapf(ErrNotApprover, "approver %s", approver)
	}
	t, err := e.load(id)
	if err != nil {
		return nil, err
	}
	if t.Executed {
		return nil, errors.Wrapf(ErrAlreadyExecuted, "transfer %d", id)
	}
	if t.HasApproved(approver) {
		return nil, errors.Wrapf(ErrDuplicateApproval, "transfer %d approved by %s", id, approver)
	}
	return t, nil
}

func (e *Engine) load(id uint64) (*Transfer, error) {
	var t Transfer
	switch err := e.transfers.One(e.db, orm.EncodeSequence(id), &t); {
	case err == nil:
		return &t, nil
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(ErrUnknownTransfer, "transfer %d", id)
	default:
		return nil, errors.Wrap(err, "cannot load transfer")
	}
}

// Deposit credits the pool with the given amount.
func (e *Engine) Deposit(ctx custody.Context, amount uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	cache := e.db.CacheWrap()
	if err := e.bank.IssueCoins(cache, e.pool, amount); err != nil {
		cache.Discard()
		return errors.Wrap(err, "cannot deposit")
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "cannot commit deposit")
	}
	custody.GetLogger(ctx).Info("pool deposit", "amount", amount)
	return nil
}

// IsApprover returns true if the address belongs to the approver set.
func (e *Engine) IsApprover(addr custody.Address) bool {
	return e.conf.HasApprover(addr)
}

// Approvers returns the approver set in the configured order.
func (e *Engine) Approvers() []custody.Address {
	res := make([]custody.Address, len(e.conf.Approvers))
	copy(res, e.conf.Approvers)
	return res
}

// Quorum returns the number of distinct approvals that releases a transfer.
func (e *Engine) Quorum() uint32 {
	return e.conf.Quorum
}

// PoolAddress returns the address holding the funds of the pool.
func (e *Engine) PoolAddress() custody.Address {
	return e.pool
}

// Transfers returns all transfer requests ordered by ID.
func (e *Engine) Transfers(ctx custody.Context) ([]*Transfer, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var res []*Transfer
	if _, err := e.transfers.All(e.db, &res); err != nil {
		return nil, errors.Wrap(err, "cannot load transfers")
	}
	return res, nil
}

// Transfer returns a single transfer request.
func (e *Engine) Transfer(ctx custody.Context, id uint64) (*Transfer, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.load(id)
}

// Balance returns the amount held by the pool.
func (e *Engine) Balance(ctx custody.Context) (uint64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.bank.Balance(e.db, e.pool)
}
