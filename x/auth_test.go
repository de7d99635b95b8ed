package x_test

import (
	"context"
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/custodytest"
	"github.com/iov-one/custody/custodytest/assert"
	. "github.com/iov-one/custody/x"
)

func TestAuth(t *testing.T) {
	a := custodytest.NewCondition()
	b := custodytest.NewCondition()
	c := custodytest.NewCondition()

	ctx1 := &custodytest.CtxAuth{Key: "foo"}
	ctx2 := &custodytest.CtxAuth{Key: "bar"}

	cases := map[string]struct {
		ctx          custody.Context
		auth         Authenticator
		mainSigner   custody.Condition
		wantInCtx    custody.Condition
		wantNotInCtx custody.Condition
		wantAll      []custody.Condition
	}{
		"empty context": {
			ctx:          context.Background(),
			auth:         &custodytest.Auth{},
			wantNotInCtx: b,
		},
		"signer a": {
			ctx:          context.Background(),
			auth:         &custodytest.Auth{Signer: a},
			mainSigner:   a,
			wantInCtx:    a,
			wantNotInCtx: b,
			wantAll:      []custody.Condition{a},
		},
		"many signers": {
			ctx:          context.Background(),
			auth:         &custodytest.Auth{Signers: []custody.Condition{b, a}},
			mainSigner:   b,
			wantInCtx:    a,
			wantNotInCtx: c,
			wantAll:      []custody.Condition{b, a},
		},
		"ctxAuth checks what is set by same key": {
			ctx:          ctx1.SetConditions(context.Background(), a, b),
			auth:         ctx1,
			mainSigner:   a,
			wantInCtx:    b,
			wantNotInCtx: c,
			wantAll:      []custody.Condition{a, b},
		},
		"ctxAuth with different key sees nothing": {
			ctx:          ctx1.SetConditions(context.Background(), a, b),
			auth:         ctx2,
			wantNotInCtx: a,
		},
		"signers set on the context": {
			ctx:          WithSigners(context.Background(), c, a),
			auth:         SignerAuth{},
			mainSigner:   c,
			wantInCtx:    a,
			wantNotInCtx: b,
			wantAll:      []custody.Condition{c, a},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.mainSigner, MainSigner(tc.ctx, tc.auth))
			if tc.wantInCtx != nil && !tc.auth.HasAddress(tc.ctx, tc.wantInCtx.Address()) {
				t.Fatal("condition address that was expected in context not found")
			}
			if tc.wantNotInCtx != nil && tc.auth.HasAddress(tc.ctx, tc.wantNotInCtx.Address()) {
				t.Fatal("condition address that was expected not to be in context found")
			}

			assert.Equal(t, tc.wantAll, tc.auth.GetConditions(tc.ctx))
		})
	}
}

func TestSignerAuthWithoutSigners(t *testing.T) {
	ctx := WithSigners(context.Background())
	if MainSigner(ctx, SignerAuth{}) != nil {
		t.Fatal("no signer expected")
	}
	if (SignerAuth{}).HasAddress(ctx, custodytest.NewAddress()) {
		t.Fatal("an address was authenticated without signers")
	}
}
