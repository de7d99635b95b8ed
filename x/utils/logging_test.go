package utils

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/custodytest"
	"github.com/iov-one/custody/custodytest/assert"
	"github.com/iov-one/custody/errors"
	"github.com/tendermint/tendermint/libs/log"
)

func TestLogging(t *testing.T) {
	cases := map[string]struct {
		handler  *custodytest.Handler
		check    bool
		wantErr  *errors.Error
		wantLogs []string
	}{
		"successful delivery is logged at info level": {
			handler:  &custodytest.Handler{DeliverResult: custody.DeliverResult{Log: "transfer 1 requested"}},
			wantLogs: []string{"I[", "transfer 1 requested", "path=multisig/create_transfer"},
		},
		"successful check is logged at debug level": {
			handler:  &custodytest.Handler{CheckResult: custody.CheckResult{Log: "looks good"}},
			check:    true,
			wantLogs: []string{"D[", "looks good"},
		},
		"failed delivery is logged at error level": {
			handler:  &custodytest.Handler{DeliverErr: errors.ErrUnauthorized},
			wantErr:  errors.ErrUnauthorized,
			wantLogs: []string{"E[", "err=unauthorized"},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var buf bytes.Buffer
			ctx := custody.WithLogger(context.Background(), log.NewTMLogger(&buf))
			tx := &custodytest.Tx{Msg: &custodytest.Msg{RoutePath: "multisig/create_transfer"}}
			h := custodytest.Decorate(tc.handler, NewLogging())

			var err error
			if tc.check {
				_, err = h.Check(ctx, tx)
			} else {
				_, err = h.Deliver(ctx, tx)
			}
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
			} else {
				assert.Nil(t, err)
			}

			logs := buf.String()
			for _, want := range tc.wantLogs {
				if !strings.Contains(logs, want) {
					t.Errorf("%q not found in %q", want, logs)
				}
			}
		})
	}
}
