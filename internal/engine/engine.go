package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tatianab/treasure-hunter/internal/logger"
	"github.com/tatianab/treasure-hunter/internal/models"
	"github.com/tatianab/treasure-hunter/internal/telemetry"
)

// State is where the game is in its lifecycle.
type State int

const (
	StateWelcome State = iota
	StateTownArrival
	StateMenu
	StateWon
	StateQuit
	StateBankrupt
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateWelcome:
		return "welcome"
	case StateTownArrival:
		return "town_arrival"
	case StateMenu:
		return "menu"
	case StateWon:
		return "won"
	case StateQuit:
		return "quit"
	case StateBankrupt:
		return "bankrupt"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session is over.
func (s State) Terminal() bool {
	return s == StateWon || s == StateQuit || s == StateBankrupt
}

const defaultHunterName = "Hunter"

var menuLines = []string{
	"(B)uy something at the shop.",
	"(S)ell something at the shop.",
	"(M)ove on to a different town.",
	"(L)ook for trouble!",
	"(D)ig for gold!",
	"(H)unt for treasure!",
	"Give up the hunt and e(X)it.",
}

// Options wires a Game to its collaborators.
type Options struct {
	Display   Display
	Input     Input
	Source    Source       // defaults to a clock-seeded source
	Rules     *Rules       // defaults to the embedded game data
	Tracer    trace.Tracer // defaults to telemetry.Tracer("game")
	SessionID string
}

// Game sequences the welcome, town arrivals and the menu loop of one session.
type Game struct {
	display Display
	input   Input
	src     Source
	rules   *Rules
	tracer  trace.Tracer

	mode   models.ModeSettings
	hunter *Hunter
	town   *Town
	state  State
	notice string

	transcript models.Transcript
}

// New creates a game ready to Run.
func New(opts Options) (*Game, error) {
	if opts.Display == nil || opts.Input == nil {
		return nil, errors.New("engine: display and input are required")
	}
	if opts.Source == nil {
		opts.Source = NewSource(0)
	}
	if opts.Rules == nil {
		rules, err := DefaultRules()
		if err != nil {
			return nil, err
		}
		opts.Rules = rules
	}
	if opts.Tracer == nil {
		opts.Tracer = telemetry.Tracer("game")
	}

	return &Game{
		display:    opts.Display,
		input:      opts.Input,
		src:        opts.Source,
		rules:      opts.Rules,
		tracer:     opts.Tracer,
		state:      StateWelcome,
		transcript: models.Transcript{SessionID: opts.SessionID},
	}, nil
}

func (g *Game) State() State              { return g.state }
func (g *Game) Hunter() *Hunter           { return g.hunter }
func (g *Game) Town() *Town               { return g.town }
func (g *Game) Mode() models.ModeSettings { return g.mode }

// Transcript returns the record of every command processed so far.
func (g *Game) Transcript() *models.Transcript {
	t := g.transcript
	t.Outcome = g.state.String()
	return &t
}

// Run plays one session to a terminal state. Bankruptcy is a terminal state,
// not an error; errors come only from the input.
func (g *Game) Run(ctx context.Context) (State, error) {
	if err := g.welcome(ctx); err != nil {
		return g.state, err
	}
	g.arrive(ctx, "")
	return g.menuLoop(ctx)
}

func (g *Game) welcome(ctx context.Context) error {
	g.display.Present("Welcome to TREASURE HUNTER!", StyleTitle)
	g.display.Present("Going hunting for the big treasure, eh?", StyleInfo)
	g.display.Present("What's your name, Hunter? ", StylePlain)
	name, err := g.input.ReadLine(ctx)
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultHunterName
	}

	g.display.Present("Difficulty (E)asy/(N)ormal/(H)ard: ", StylePlain)
	choice, err := readCommand(ctx, g.input)
	if err != nil {
		return err
	}
	g.startSession(ctx, name, g.rules.Mode(choice))
	return nil
}

// startSession creates the hunter for the chosen mode. A stocked mode buys
// one of each base item up front.
func (g *Game) startSession(ctx context.Context, name string, mode models.ModeSettings) {
	g.mode = mode
	g.hunter = NewHunter(name, mode.StartingGold, mode.Privileged)
	if mode.Stocked {
		for _, entry := range g.rules.Catalog() {
			if entry.Privileged {
				continue
			}
			if err := g.hunter.Buy(Item(entry.Item), entry.Price); err != nil {
				logger.FromContext(ctx).Warn("Failed to stock item", "item", entry.Item, "error", err)
			}
		}
	}
	g.transcript.Hunter = name
	g.transcript.Mode = mode.Name

	logger.FromContext(ctx).Info("Session started",
		"hunter", name, "mode", mode.Name, "gold", g.hunter.Gold(), "privileged", mode.Privileged)
}

// arrive replaces the current town with a fresh one.
func (g *Game) arrive(ctx context.Context, prelude string) {
	g.state = StateTownArrival
	_, span := g.tracer.Start(ctx, "town.arrive")
	defer span.End()

	shop := NewShop(g.mode.Markdown, g.rules.Catalog())
	g.town = NewTown(shop, g.mode.Toughness, g.rules, g.src)
	g.town.Arrive(g.hunter, prelude)
	g.state = StateMenu

	span.SetAttributes(
		attribute.String("terrain", g.town.Terrain().Name),
		attribute.Bool("tough", g.town.Tough()),
	)
	logger.FromContext(ctx).Debug("Arrived in town",
		"terrain", g.town.Terrain().Name, "needed", string(g.town.Terrain().Needed), "tough", g.town.Tough())
}

func (g *Game) menuLoop(ctx context.Context) (State, error) {
	for {
		g.display.Clear()

		if g.hunter.HasAllTreasures() {
			g.display.Present("Congratulations, you have found the last of the three treasures, you win!", StyleSuccess)
			g.state = StateWon
			logger.FromContext(ctx).Info("Session won", "hunter", g.hunter.Name(), "gold", g.hunter.Gold())
			return g.state, nil
		}

		g.showStatus()
		choice, err := readCommand(ctx, g.input)
		if err != nil {
			return g.state, err
		}

		err = g.processChoice(ctx, choice)
		g.record(choice)
		if errors.Is(err, ErrBankrupt) {
			g.display.Present("You ran out of gold! Game over!", StyleDanger)
			g.state = StateBankrupt
			logger.FromContext(ctx).Info("Session lost", "hunter", g.hunter.Name(), "error", err)
			return g.state, nil
		}
		if err != nil {
			return g.state, err
		}
		if g.state.Terminal() {
			return g.state, nil
		}
	}
}

func (g *Game) showStatus() {
	if g.notice != "" {
		g.display.Present(g.notice, StyleDanger)
		g.notice = ""
	}
	g.display.Present(g.town.News(), StyleInfo)
	g.display.Present("***", StylePlain)
	g.display.Present(g.hunter.Describe(), StylePlain)
	g.display.Present(g.town.String(), StylePlain)
	g.display.Present(strings.Join(menuLines, "\n"), StylePlain)
	g.display.Present("What's your next move? ", StylePlain)
}

// processChoice dispatches one menu command.
func (g *Game) processChoice(ctx context.Context, choice string) error {
	ctx, span := g.tracer.Start(ctx, "game.turn")
	defer span.End()
	span.SetAttributes(
		attribute.String("command", choice),
		attribute.Int("gold", g.hunter.Gold()),
	)
	logger.FromContext(ctx).Debug("Processing command", "command", choice, "gold", g.hunter.Gold())

	var err error
	switch choice {
	case "b":
		err = g.town.EnterShop(ctx, ShopBuy, g.display, g.input)
	case "s":
		err = g.town.EnterShop(ctx, ShopSell, g.display, g.input)
	case "m":
		if g.town.LeaveTown(g.mode.Easy) {
			g.arrive(ctx, g.town.News())
		}
	case "l":
		err = g.town.LookForTrouble()
	case "d":
		err = g.town.DigForGold()
	case "h":
		err = g.town.HuntForTreasure()
	case "x":
		g.display.Present(fmt.Sprintf("Fare thee well, %s!", g.hunter.Name()), StylePlain)
		g.state = StateQuit
		logger.FromContext(ctx).Info("Session quit", "hunter", g.hunter.Name())
	default:
		g.notice = "Yikes! That's an invalid option! Try again."
	}

	if err != nil {
		span.RecordError(err)
	}
	return err
}

func (g *Game) record(choice string) {
	kit := g.hunter.Kit()
	items := make([]string, len(kit))
	for i, item := range kit {
		items[i] = string(item)
	}
	found := g.hunter.Treasures()
	treasures := make([]string, len(found))
	for i, t := range found {
		treasures[i] = string(t)
	}

	g.transcript.Turns = append(g.transcript.Turns, models.TurnRecord{
		Turn:      len(g.transcript.Turns) + 1,
		Command:   choice,
		Narrative: g.town.News(),
		Gold:      g.hunter.Gold(),
		Kit:       items,
		Treasures: treasures,
	})
}
