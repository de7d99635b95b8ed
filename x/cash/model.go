package cash

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/custody/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

// Wallet holds the value owned by a single address.
type Wallet struct {
	Amount uint64 `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
}

var _ orm.Model = (*Wallet)(nil)

func (w *Wallet) Reset()         { *w = Wallet{} }
func (w *Wallet) String() string { return proto.CompactTextString(w) }
func (*Wallet) ProtoMessage()    {}

// Validate is always successful. Any amount is a valid balance.
func (w *Wallet) Validate() error {
	return nil
}

// NewBucket returns a bucket of wallets keyed by the owner address.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &Wallet{})
}
