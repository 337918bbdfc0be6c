package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/tatianab/treasure-hunter/internal/config"
	"github.com/tatianab/treasure-hunter/internal/engine"
	"github.com/tatianab/treasure-hunter/internal/tui"
)

func main() {
	ui := flag.String("ui", "", "front end: tui or console (overrides TREASURE_UI)")
	seed := flag.Int64("seed", 0, "random seed, 0 seeds from the clock (overrides TREASURE_SEED)")
	transcripts := flag.String("transcripts", "", "directory for session transcripts (overrides TRANSCRIPT_DIR)")
	list := flag.Bool("list", false, "list saved transcripts and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *ui != "" {
		cfg.UI = *ui
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *transcripts != "" {
		cfg.TranscriptDir = *transcripts
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *list {
		if cfg.TranscriptDir == "" {
			fmt.Println("Transcripts are disabled (TRANSCRIPT_DIR is empty)")
			return
		}
		if err := tui.PrintTranscripts(os.Stdout, cfg.TranscriptDir); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	state, err := tui.Play(ctx, cfg)
	stop()
	if err != nil {
		fmt.Printf("Error running game: %v\n", err)
		os.Exit(1)
	}
	if state == engine.StateBankrupt {
		os.Exit(2)
	}
}
