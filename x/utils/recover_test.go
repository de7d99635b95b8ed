package utils

import (
	"context"
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/custodytest"
	"github.com/iov-one/custody/custodytest/assert"
	"github.com/iov-one/custody/errors"
)

type panicHandler struct{}

func (panicHandler) Check(custody.Context, custody.Tx) (*custody.CheckResult, error) {
	panic("check")
}

func (panicHandler) Deliver(custody.Context, custody.Tx) (*custody.DeliverResult, error) {
	panic("deliver")
}

func TestRecovery(t *testing.T) {
	h := custodytest.Decorate(panicHandler{}, NewRecovery())
	ctx := context.Background()

	_, err := h.Check(ctx, &custodytest.Tx{})
	assert.IsErr(t, errors.ErrPanic, err)
	_, err = h.Deliver(ctx, &custodytest.Tx{})
	assert.IsErr(t, errors.ErrPanic, err)

	// Without panic the result is passed through.
	ok := custodytest.Decorate(&custodytest.Handler{}, NewRecovery())
	_, err = ok.Deliver(ctx, &custodytest.Tx{})
	assert.Nil(t, err)
}
