package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/app"
	"github.com/tendermint/tendermint/libs/log"
)

func main() {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	genesisFl := fl.String("genesis", "genesis.json", "Path to the genesis file declaring approvers, quorum and initial balances.")
	debugFl := fl.Bool("debug", false, "Print full error information and debug logs.")
	fl.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage:
	%s [options] < commands

Run a custody engine initialized from the genesis file and execute commands
read from the standard input, one per line. Commands that change the state
must be prefixed with the name of the caller:

	alice create 100 xavier
	bob approve 0
	transfers
	balance

Available commands are:
	%s

`, os.Args[0], commandNames())
		fl.PrintDefaults()
	}
	fl.Parse(os.Args[1:])

	logger := log.NewTMLogger(log.NewSyncWriter(os.Stderr)).With("module", "custody")
	if !*debugFl {
		logger = log.NewFilter(logger, log.AllowInfo())
	}
	ctx := custody.WithLogger(context.Background(), logger)

	gen, err := app.LoadGenesis(*genesisFl)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	s, err := newSession(ctx, gen, *debugFl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot initialize: %s\n", err)
		os.Exit(1)
	}
	logger.Info("custody ready", "name", gen.Name, "version", custody.Version())

	if err := s.run(ctx, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
