package tui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/tatianab/treasure-hunter/internal/engine"
)

const clearScreen = "\033[H\033[2J"

// Console is a line-oriented front end for terminals without full-screen
// support, and for piping a scripted session through the game.
type Console struct {
	out      io.Writer
	lines    chan string
	err      error
	done     chan struct{}
	finished chan struct{}
}

// NewConsole starts reading lines from in. The reader goroutine exits when in
// is exhausted or the console is closed, whichever comes first. A read already
// blocked on in still has to return before the goroutine can notice Close.
func NewConsole(in io.Reader, out io.Writer) *Console {
	c := &Console{
		out:      out,
		lines:    make(chan string),
		done:     make(chan struct{}),
		finished: make(chan struct{}),
	}
	go c.scan(in)
	return c
}

func (c *Console) scan(in io.Reader) {
	defer close(c.finished)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case c.lines <- scanner.Text():
		case <-c.done:
			return
		}
	}
	c.err = scanner.Err()
	close(c.lines)
}

// Close stops handing lines to the game.
func (c *Console) Close() {
	select {
	case <-c.done:
	default:
		close(c.done)
	}
}

// Present writes text in its style. Prompts, which end in a space, are
// left unterminated so the answer is typed on the same line.
func (c *Console) Present(text string, style engine.Style) {
	if style == engine.StylePlain && strings.HasSuffix(text, " ") {
		fmt.Fprint(c.out, text)
		return
	}
	fmt.Fprintln(c.out, styleFor(style).Render(text))
}

func (c *Console) Clear() {
	fmt.Fprint(c.out, clearScreen)
}

func (c *Console) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			if c.err != nil {
				return "", c.err
			}
			return "", io.EOF
		}
		return line, nil
	}
}

// RunConsole plays one session reading commands from in and writing the
// narrative to out.
func RunConsole(ctx context.Context, opts engine.Options, in io.Reader, out io.Writer) (*engine.Game, engine.State, error) {
	console := NewConsole(in, out)
	defer console.Close()
	opts.Display, opts.Input = console, console
	g, err := engine.New(opts)
	if err != nil {
		return nil, engine.StateWelcome, err
	}
	state, err := g.Run(ctx)
	return g, state, err
}
