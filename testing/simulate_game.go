package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/tatianab/treasure-hunter/internal/config"
	"github.com/tatianab/treasure-hunter/internal/engine"
	"github.com/tatianab/treasure-hunter/internal/logger"
	"github.com/tatianab/treasure-hunter/internal/telemetry"
)

const maxReads = 80

// llmPlayer plays the game by showing a Gemini model everything the game
// printed since its last answer.
type llmPlayer struct {
	model   *genai.GenerativeModel
	screen  []string
	history []string
	reads   int
}

func (p *llmPlayer) Present(text string, _ engine.Style) {
	fmt.Println(text)
	p.screen = append(p.screen, text)
}

func (p *llmPlayer) Clear() {
	p.screen = nil
}

func (p *llmPlayer) ReadLine(ctx context.Context) (string, error) {
	p.reads++
	if p.reads > maxReads {
		fmt.Println("> x (out of turns)")
		return "x", nil
	}

	answer := p.ask(ctx)
	fmt.Printf("> %s\n", answer)
	p.history = append(p.history, answer)
	return answer, nil
}

func (p *llmPlayer) ask(ctx context.Context) string {
	recent := p.history
	if len(recent) > 20 {
		recent = recent[len(recent)-20:]
	}

	prompt := fmt.Sprintf(`You are playing TREASURE HUNTER, a text game. Find a crown, a trophy and a gem
by moving between towns and hunting for treasure. Buy the item each terrain needs before moving on,
and do not run out of gold.

Screen:
%s

Your recent answers: %s

Reply with ONLY what you would type at the prompt: a name, a difficulty letter, a menu letter,
an item name, or y/n.`,
		strings.Join(p.screen, "\n"),
		strings.Join(recent, ", "),
	)

	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("Player model failed: %v", err)
		return "x"
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "x"
	}
	return strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
}

func main() {
	seed := flag.Int64("seed", 0, "random seed, 0 seeds from the clock")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.RequireGeminiKey(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	sessionID := logger.NewSessionID()
	ctx = logger.WithSessionID(ctx, sessionID)

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		log.Fatalf("Failed to create player client: %v", err)
	}
	defer client.Close()

	player := &llmPlayer{model: client.GenerativeModel("gemini-2.5-flash")}
	game, err := engine.New(engine.Options{
		Display:   player,
		Input:     player,
		Source:    engine.NewSource(cfg.Seed),
		Tracer:    telemetry.NoopTracer(),
		SessionID: sessionID,
	})
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	state, err := game.Run(ctx)
	if err != nil {
		log.Fatalf("Game stopped: %v", err)
	}

	tr := game.Transcript()
	fmt.Printf("\n--- Game ended: %s after %d turns ---\n", state, len(tr.Turns))
	if cfg.TranscriptDir != "" {
		if err := tr.Save(cfg.TranscriptDir); err != nil {
			log.Printf("Failed to save transcript: %v", err)
		} else {
			fmt.Printf("Transcript saved under %s/%s\n", cfg.TranscriptDir, sessionID)
		}
	}
}
