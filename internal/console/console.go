// Package console is the interactive presentation layer: it prints the menu,
// reads and parses user input line by line, drives a processor.Processor,
// and renders each outcome as text.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/vending/internal/processor"
	"github.com/mesh-intelligence/vending/pkg/types"
)

// Console runs one interactive session.
type Console struct {
	proc   *processor.Processor
	in     *bufio.Scanner
	out    io.Writer
	logger *slog.Logger
	pace   time.Duration
	sleep  func(time.Duration)
	secret bool
}

// Option configures a Console.
type Option func(*Console)

// WithPace sets the pause after a successful add, on entering the secret
// menu, and at shutdown. Zero disables pauses.
func WithPace(d time.Duration) Option {
	return func(c *Console) { c.pace = d }
}

// WithLogger sets the logger. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(c *Console) { c.logger = l }
}

// WithSleep replaces time.Sleep, for tests.
func WithSleep(fn func(time.Duration)) Option {
	return func(c *Console) { c.sleep = fn }
}

// New returns a Console reading from in and writing to out.
func New(proc *processor.Processor, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		proc:   proc,
		in:     newScanner(in),
		out:    out,
		logger: slog.New(slog.DiscardHandler),
		sleep:  time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// maxLineBytes is the longest input line the console accepts.
const maxLineBytes = 1 << 20

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)
	return sc
}

// Run loops until the quit command, end of input, or ctx cancellation.
// Core errors are reported and the loop returns to the menu; they never
// end the session. An input read error, such as a line longer than
// maxLineBytes, is reported once and ends the session. Run returns
// ctx.Err() on cancellation and the read error otherwise.
func (c *Console) Run(ctx context.Context) error {
	c.println("Welcome to the Snack Vending Machine!")
	c.println()

	var runErr error
	for {
		if err := ctx.Err(); err != nil {
			c.proc.Reset()
			runErr = err
			break
		}

		var (
			quit bool
			err  error
		)
		if c.secret {
			quit, err = c.secretStep()
		} else {
			quit, err = c.step()
		}
		if errors.Is(err, io.EOF) {
			c.proc.Reset()
			break
		}
		if err != nil {
			c.report(err)
		}
		// A failed scanner never yields another line.
		if readErr := c.in.Err(); readErr != nil {
			c.proc.Reset()
			c.logger.Error("input read failed", slog.Any("error", readErr))
			break
		}
		if quit {
			break
		}
	}

	c.shutdown()
	if runErr != nil {
		return runErr
	}
	return c.in.Err()
}

// step shows the menu, reads one command token, and carries it through.
func (c *Console) step() (bool, error) {
	c.printMenu()
	token, err := c.readLine()
	if err != nil {
		return false, err
	}
	if strings.TrimSpace(token) == secretToken {
		c.enterSecret()
		return false, nil
	}

	cmd, err := c.proc.Select(token)
	if err != nil {
		return false, err
	}

	var args processor.Args
	switch cmd {
	case processor.CommandAdd:
		args, err = c.readAddArgs()
	case processor.CommandRemove, processor.CommandFilterAbove:
		empty, listErr := c.catalogEmpty()
		if listErr != nil {
			c.proc.Reset()
			return false, listErr
		}
		if empty {
			c.proc.Reset()
			c.printEmpty(cmd)
			return false, nil
		}
		if cmd == processor.CommandRemove {
			args, err = c.readRemoveArgs()
		} else {
			args, err = c.readFilterArgs()
		}
	}
	if err != nil {
		c.proc.Reset()
		return false, err
	}

	out := c.proc.Dispatch(args)
	return out.Quit, c.render(out)
}

func (c *Console) catalogEmpty() (bool, error) {
	snacks, err := c.proc.List()
	if err != nil {
		return false, err
	}
	return len(snacks) == 0, nil
}

// printEmpty explains why a command that needs snacks did nothing.
func (c *Console) printEmpty(cmd processor.Command) {
	c.println()
	if cmd == processor.CommandRemove {
		c.println("No snacks available.")
		c.println("Nothing removed.")
	} else {
		c.println("No snacks available to compare price.")
	}
	c.println()
}

func (c *Console) readAddArgs() (processor.Args, error) {
	var args processor.Args
	c.println()
	c.println("Please enter a snack")
	c.println()

	c.println("Please enter the snack barcode.")
	c.printf("Valid barcode range is [%d - %d].\n", types.MinBarcode, types.MaxBarcode)
	barcode, err := c.readInt()
	if err != nil {
		return args, err
	}
	if err := c.proc.Precheck(barcode); err != nil {
		return args, err
	}
	args.Barcode = barcode

	c.println("Please enter the snack calories.")
	c.printf("Valid range is [%d - %d].\n", types.MinCalories, types.MaxCalories)
	if args.Calories, err = c.readInt(); err != nil {
		return args, err
	}
	if err := types.CheckCalories(args.Calories); err != nil {
		return args, err
	}

	c.println("Please enter the snack price.")
	c.printf("Valid range is [%s - %s].\n", types.MinPrice.StringFixed(2), types.MaxPrice.StringFixed(2))
	if args.Price, err = c.readDecimal(); err != nil {
		return args, err
	}
	if err := types.CheckPrice(args.Price); err != nil {
		return args, err
	}

	c.println("Please enter the snack name")
	if args.Name, err = c.readLine(); err != nil {
		return args, err
	}
	if err := types.CheckName(args.Name); err != nil {
		return args, err
	}
	return args, nil
}

func (c *Console) readRemoveArgs() (processor.Args, error) {
	var args processor.Args
	snacks, err := c.proc.List()
	if err != nil {
		return args, err
	}
	c.println("Please enter the barcode of the snack item you would like to remove")
	for _, s := range snacks {
		c.println(strconv.Itoa(s.Barcode()))
	}
	args.Barcode, err = c.readInt()
	return args, err
}

func (c *Console) readFilterArgs() (processor.Args, error) {
	var args processor.Args
	c.println("Enter a price. (This should be a decimal. Ex: 4.45)")
	c.println()
	var err error
	args.Threshold, err = c.readDecimal()
	return args, err
}

// render prints a dispatch outcome. Errors that have a dedicated message
// are printed here; the rest are returned for the generic error report.
func (c *Console) render(out processor.Outcome) error {
	if out.Err != nil {
		switch {
		case errors.Is(out.Err, types.ErrNotFound) && out.Command == processor.CommandRemove:
			c.println("Sorry, no snack with that matching barcode was found.")
			c.println("Nothing removed.")
			c.println()
			return nil
		case errors.Is(out.Err, types.ErrSeedConflict):
			c.println("Unable to seed snacks. One or more seeded barcodes exist.")
			c.println()
			return nil
		}
		return out.Err
	}

	switch out.Command {
	case processor.CommandAdd:
		c.printf("\nNew Item:\n\n%s\n\nSuccessfully added!\n-------------------\n\n", out.Added)
		c.pause()
	case processor.CommandRemove:
		c.printf("\n%s successfully removed!\n\n", out.RemovedName)
	case processor.CommandFilterAbove:
		c.printf("Showing all items above %s:\n\n", types.FormatPrice(out.Threshold))
		if len(out.Snacks) == 0 {
			c.println("None")
			c.println()
		}
		for _, s := range out.Snacks {
			c.printf("%s\n\n", s)
		}
	case processor.CommandListAll:
		if len(out.Snacks) == 0 {
			c.println()
			c.println("Sorry, no snacks available. Please add a snack.")
			c.println()
			return nil
		}
		c.println()
		c.println("Current snacks available:")
		c.println()
		for _, s := range out.Snacks {
			c.printf("%s\n\n", s)
		}
	case processor.CommandSeed:
		c.println("Successfully injected seed snacks.")
		c.println()
	}
	return nil
}

// report prints an error and the restart notice. The processor has already
// returned to the menu prompt.
func (c *Console) report(err error) {
	c.logger.Debug("reporting error", slog.Any("error", err))

	var unrec *types.UnrecognizedCommandError
	if errors.As(err, &unrec) {
		c.println()
		c.printf("Sorry, invalid input: %s\n", unrec.Token)
		if unrec.Numeric {
			c.println("Number out of range.")
			c.println()
			return
		}
		// A non-numeric token also takes the restart path.
		c.println("Program is expecting an integer.")
		err = &types.InputTypeMismatchError{Kind: types.KindInteger, Input: unrec.Token}
	}

	c.printf("\n\nOops, an error occurred - \n%s\n\n", Message(err))
	c.println("Restarting...")
	c.println()
}

func (c *Console) shutdown() {
	c.printf("\n\nShutting down...")
	c.pause()
	c.printf("\n\nThank you for choosing the Snack Vending Machine. Goodbye.\n")
}

func (c *Console) printMenu() {
	c.println("Menu")
	c.println()
	c.println("1. Add a snack")
	c.println("2. Remove a snack")
	c.println("3. Print snacks that cost more than a given price")
	c.println("4. Print all the snacks")
	c.println("0. End this program")
}

func (c *Console) pause() {
	if c.pace > 0 {
		c.sleep(c.pace)
	}
}

// readLine returns the next input line, or io.EOF when input is exhausted.
func (c *Console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return c.in.Text(), nil
}

func (c *Console) readInt() (int, error) {
	line, err := c.readLine()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, &types.InputTypeMismatchError{Kind: types.KindInteger, Input: line}
	}
	return n, nil
}

func (c *Console) readDecimal() (decimal.Decimal, error) {
	line, err := c.readLine()
	if err != nil {
		return decimal.Zero, err
	}
	d, err := decimal.NewFromString(strings.TrimSpace(line))
	if err != nil {
		return decimal.Zero, &types.InputTypeMismatchError{Kind: types.KindDecimal, Input: line}
	}
	return d, nil
}

func (c *Console) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}
