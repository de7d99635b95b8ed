package main

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/app"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/store"
	"github.com/iov-one/custody/x"
	"github.com/iov-one/custody/x/cash"
	"github.com/iov-one/custody/x/multisig"
	"github.com/iov-one/custody/x/utils"
)

// bech32Prefix is the human readable part of printed bech32 addresses.
const bech32Prefix = "custody"

// session is a single custody engine together with the handler stack
// commands are executed with.
type session struct {
	db      custody.ReadOnlyKVStore
	bank    cash.Controller
	engine  *multisig.Engine
	handler custody.Handler
	debug   bool
}

func newSession(ctx custody.Context, gen app.Genesis, debug bool) (*session, error) {
	db := store.MemStore()
	bank := cash.NewController()

	init := app.ChainInitializers(
		cash.Initializer{},
		&multisig.Initializer{Bank: bank},
	)
	if err := init.FromGenesis(gen.AppOptions, db); err != nil {
		return nil, errors.Wrap(err, "genesis")
	}
	engine, err := multisig.LoadEngine(ctx, db, bank)
	if err != nil {
		return nil, err
	}

	router := app.NewRouter()
	multisig.RegisterRoutes(router, x.SignerAuth{}, engine)
	handler := app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
	).WithHandler(router)

	return &session{
		db:      db,
		bank:    bank,
		engine:  engine,
		handler: handler,
		debug:   debug,
	}, nil
}

// run executes all commands read from the input. A failed command does not
// stop the execution, its error is written to the output instead.
func (s *session) run(ctx custody.Context, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := s.exec(ctx, line, out); err != nil {
			code, log := errors.ABCIInfo(err, s.debug)
			fmt.Fprintf(out, "ERROR %d: %s\n", code, log)
		}
	}
	return sc.Err()
}

// exec runs a single command line. When the first token is not a command
// name, it is the name of the caller.
func (s *session) exec(ctx custody.Context, line string, out io.Writer) error {
	args := strings.Fields(line)
	run, ok := commands[args[0]]
	if !ok {
		if len(args) < 2 {
			return errors.Wrapf(errors.ErrInput, "unknown command %q", args[0])
		}
		ctx = x.WithSigners(ctx, identity(args[0]))
		args = args[1:]
		if run, ok = commands[args[0]]; !ok {
			return errors.Wrapf(errors.ErrInput, "unknown command %q", args[0])
		}
	}
	return run(ctx, s, out, args[1:])
}

// commands is a register of all commands available in a session. A command
// is given the rest of the line, split by whitespace.
var commands = map[string]func(ctx custody.Context, s *session, out io.Writer, args []string) error{
	"addr":      cmdAddr,
	"approve":   cmdApprove,
	"approvers": cmdApprovers,
	"balance":   cmdBalance,
	"create":    cmdCreate,
	"deposit":   cmdDeposit,
	"quorum":    cmdQuorum,
	"transfers": cmdTransfers,
	"version":   cmdVersion,
}

func commandNames() string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, "\n\t")
}

// identity returns the condition of a named session user.
func identity(name string) custody.Condition {
	return custody.NewCondition("cli", "user", []byte(name))
}

// parseAddress accepts either a user name or an address in any of the
// formats understood by custody.ParseAddress, with a format prefix.
func parseAddress(s string) (custody.Address, error) {
	if strings.Contains(s, ":") {
		return custody.ParseAddress(s)
	}
	return identity(s).Address(), nil
}

func parseUint(name, s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(errors.ErrInput, "%s: %s", name, err)
	}
	return n, nil
}

func wantArgs(args []string, n int, usage string) error {
	if len(args) != n {
		return errors.Wrapf(errors.ErrInput, "usage: %s", usage)
	}
	return nil
}

// deliver runs the message through the check and the deliver phase.
func (s *session) deliver(ctx custody.Context, msg custody.Msg) (*custody.DeliverResult, error) {
	tx := &cliTx{msg: msg}
	if _, err := s.handler.Check(ctx, tx); err != nil {
		return nil, err
	}
	return s.handler.Deliver(ctx, tx)
}

type cliTx struct {
	msg custody.Msg
}

func (tx *cliTx) GetMsg() (custody.Msg, error) {
	return tx.msg, nil
}

func cmdCreate(ctx custody.Context, s *session, out io.Writer, args []string) error {
	if err := wantArgs(args, 2, "<caller> create <amount> <destination>"); err != nil {
		return err
	}
	amount, err := parseUint("amount", args[0])
	if err != nil {
		return err
	}
	dest, err := parseAddress(args[1])
	if err != nil {
		return err
	}
	res, err := s.deliver(ctx, &multisig.CreateTransferMsg{Amount: amount, Destination: dest})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, res.Log)
	return nil
}

func cmdApprove(ctx custody.Context, s *session, out io.Writer, args []string) error {
	if err := wantArgs(args, 1, "<caller> approve <transfer id>"); err != nil {
		return err
	}
	id, err := parseUint("transfer id", args[0])
	if err != nil {
		return err
	}
	res, err := s.deliver(ctx, &multisig.ApproveTransferMsg{TransferID: id})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, res.Log)
	return nil
}

func cmdTransfers(ctx custody.Context, s *session, out io.Writer, args []string) error {
	if err := wantArgs(args, 0, "transfers"); err != nil {
		return err
	}
	transfers, err := s.engine.Transfers(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tAMOUNT\tDESTINATION\tAPPROVALS\tEXECUTED")
	for _, t := range transfers {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%d/%d\t%v\n",
			t.ID, t.Amount, t.Destination, t.ApprovalCount, s.engine.Quorum(), t.Executed)
	}
	return tw.Flush()
}

func cmdBalance(ctx custody.Context, s *session, out io.Writer, args []string) error {
	switch len(args) {
	case 0:
		amount, err := s.engine.Balance(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, amount)
		return nil
	case 1:
		addr, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		amount, err := s.bank.Balance(s.db, addr)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, amount)
		return nil
	default:
		return errors.Wrap(errors.ErrInput, "usage: balance [<address>]")
	}
}

func cmdApprovers(ctx custody.Context, s *session, out io.Writer, args []string) error {
	if err := wantArgs(args, 0, "approvers"); err != nil {
		return err
	}
	for _, a := range s.engine.Approvers() {
		fmt.Fprintln(out, a)
	}
	return nil
}

func cmdQuorum(ctx custody.Context, s *session, out io.Writer, args []string) error {
	if err := wantArgs(args, 0, "quorum"); err != nil {
		return err
	}
	fmt.Fprintln(out, s.engine.Quorum())
	return nil
}

func cmdDeposit(ctx custody.Context, s *session, out io.Writer, args []string) error {
	if err := wantArgs(args, 1, "deposit <amount>"); err != nil {
		return err
	}
	amount, err := parseUint("amount", args[0])
	if err != nil {
		return err
	}
	if err := s.engine.Deposit(ctx, amount); err != nil {
		return err
	}
	fmt.Fprintf(out, "deposited %d\n", amount)
	return nil
}

func cmdAddr(ctx custody.Context, s *session, out io.Writer, args []string) error {
	var addr custody.Address
	switch len(args) {
	case 0:
		addr = s.engine.PoolAddress()
	case 1:
		a, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		addr = a
	default:
		return errors.Wrap(errors.ErrInput, "usage: addr [<name>]")
	}
	b32, err := addr.Bech32(bech32Prefix)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s %s\n", addr, b32)
	return nil
}

func cmdVersion(ctx custody.Context, s *session, out io.Writer, args []string) error {
	fmt.Fprintln(out, custody.Version())
	return nil
}
