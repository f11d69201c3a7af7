// Package processor runs the command state machine over a catalog. A caller
// selects a command by token, supplies its parsed arguments, and receives an
// Outcome; the processor is back at the menu prompt after every dispatch,
// whether the command succeeded or failed.
package processor

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/vending/internal/catalog"
	"github.com/mesh-intelligence/vending/pkg/types"
)

// Mode is the processor's position in the request cycle.
type Mode int

// Processor modes.
const (
	// ModeMenuPrompt means no command is pending; the menu is about to be shown.
	ModeMenuPrompt Mode = iota
	// ModeAwaitingDispatch means a command token has been read and must run.
	ModeAwaitingDispatch
)

func (m Mode) String() string {
	if m == ModeAwaitingDispatch {
		return "awaiting-dispatch"
	}
	return "menu-prompt"
}

// Args carries the caller-parsed arguments for a command. Only the fields
// the pending command uses are read.
type Args struct {
	Barcode   int
	Calories  int
	Price     decimal.Decimal
	Name      string
	Threshold decimal.Decimal
}

// Request is a token plus its arguments, for callers that have everything
// up front.
type Request struct {
	Token string
	Args
}

// Outcome is the structured result of one dispatch. Err is nil on success.
// Outcomes carry no display text; rendering belongs to the caller.
type Outcome struct {
	Command     Command
	Token       string
	Added       *types.Snack
	Snacks      []types.Snack
	RemovedName string
	Threshold   decimal.Decimal
	Quit        bool
	Err         error
}

// OK reports whether the dispatch succeeded.
func (o Outcome) OK() bool { return o.Err == nil }

// Processor owns the catalog for a session and tracks the pending command.
// A Processor is not safe for concurrent use.
type Processor struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
	session string
	mode    Mode
	pending Command
	token   string
}

// New returns a Processor in ModeMenuPrompt over cat. A nil logger discards
// log output.
func New(cat *catalog.Catalog, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	session := newSessionID()
	return &Processor{
		catalog: cat,
		logger:  logger.With(slog.String("session", session)),
		session: session,
		mode:    ModeMenuPrompt,
	}
}

// newSessionID returns a time-ordered UUID, falling back to a random one if
// the clock sequence is unavailable.
func newSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Session returns the session identifier bound to every log record.
func (p *Processor) Session() string { return p.session }

// Mode returns the current mode.
func (p *Processor) Mode() Mode { return p.mode }

// Pending returns the selected command while in ModeAwaitingDispatch.
func (p *Processor) Pending() (Command, bool) {
	if p.mode != ModeAwaitingDispatch {
		return "", false
	}
	return p.pending, true
}

// Select reads a command token. A recognised token moves the processor to
// ModeAwaitingDispatch; an unrecognised one returns a
// *types.UnrecognizedCommandError and leaves it at the menu prompt.
func (p *Processor) Select(token string) (Command, error) {
	p.Reset()
	cmd, err := ParseCommand(token)
	if err != nil {
		p.logger.Info("unrecognized command", slog.String("token", token), slog.Any("error", err))
		return "", err
	}
	p.mode = ModeAwaitingDispatch
	p.pending = cmd
	p.token = token
	p.logger.Debug("command selected", slog.String("command", cmd.String()))
	return cmd, nil
}

// Dispatch runs the pending command with args and returns to
// ModeMenuPrompt. Without a pending command the outcome carries
// types.ErrNoPendingCommand.
func (p *Processor) Dispatch(args Args) Outcome {
	if p.mode != ModeAwaitingDispatch {
		return Outcome{Err: types.ErrNoPendingCommand}
	}
	cmd, token := p.pending, p.token
	defer p.Reset()

	out := p.run(cmd, args)
	out.Command = cmd
	out.Token = token

	attrs := []any{slog.String("command", cmd.String())}
	if out.Err != nil {
		p.logger.Info("command failed", append(attrs, slog.Any("error", out.Err))...)
	} else {
		p.logger.Debug("command done", attrs...)
	}
	return out
}

// Handle selects req.Token and dispatches it in one step.
func (p *Processor) Handle(req Request) Outcome {
	if _, err := p.Select(req.Token); err != nil {
		return Outcome{Token: req.Token, Err: err}
	}
	return p.Dispatch(req.Args)
}

// Reset drops any pending command and returns to ModeMenuPrompt. Callers
// use it when argument input fails before Dispatch.
func (p *Processor) Reset() {
	p.mode = ModeMenuPrompt
	p.pending = ""
	p.token = ""
}

// Precheck validates a barcode for an add before the remaining fields are
// gathered: it must be in range and not already in the catalog. The
// processor state is not changed.
func (p *Processor) Precheck(barcode int) error {
	if err := types.CheckBarcode(barcode); err != nil {
		return err
	}
	exists, err := p.catalog.Contains(barcode)
	if err != nil {
		return err
	}
	if exists {
		return &types.DuplicateBarcodeError{Barcode: barcode}
	}
	return nil
}

// List returns a snapshot of the catalog without touching the mode.
func (p *Processor) List() ([]types.Snack, error) {
	return p.catalog.List()
}

// FilterAbovePrice returns a filtered snapshot without touching the mode.
func (p *Processor) FilterAbovePrice(threshold decimal.Decimal) ([]types.Snack, error) {
	return p.catalog.FilterAbovePrice(threshold)
}

func (p *Processor) run(cmd Command, args Args) Outcome {
	switch cmd {
	case CommandAdd:
		snack, err := p.catalog.Add(args.Barcode, args.Calories, args.Price, args.Name)
		if err != nil {
			return Outcome{Err: err}
		}
		return Outcome{Added: &snack}
	case CommandRemove:
		name, err := p.catalog.RemoveByBarcode(args.Barcode)
		return Outcome{RemovedName: name, Err: err}
	case CommandFilterAbove:
		snacks, err := p.catalog.FilterAbovePrice(args.Threshold)
		return Outcome{Snacks: snacks, Threshold: args.Threshold, Err: err}
	case CommandListAll:
		snacks, err := p.catalog.List()
		return Outcome{Snacks: snacks, Err: err}
	case CommandSeed:
		snacks, err := p.catalog.SeedDefaults()
		return Outcome{Snacks: snacks, Err: err}
	case CommandQuit:
		return Outcome{Quit: true}
	default:
		return Outcome{Err: fmt.Errorf("command %q: %w", cmd, types.ErrUnrecognizedCommand)}
	}
}
